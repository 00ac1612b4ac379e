package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todoweb/internal/apiclient"
	"todoweb/internal/http/middleware"
	"todoweb/internal/service"
)

const msgAPIDown = "the API is not responding"

func (h *handler) home(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "home", h.homeData(c, nil))
}

// homeData loads the todos of the current user. A failed fetch leaves the
// list nil so the page still renders.
func (h *handler) homeData(c *fiber.Ctx, form *FormResult) HomeData {
	user := middleware.CurrentUser(c)
	todos, err := h.todos.List(c.UserContext(), user)
	if err != nil {
		h.log.Error(c.UserContext(), "fetch todos failed",
			"request_id", middleware.RequestIDFromCtx(c), "error", err)
		todos = nil
	}
	return HomeData{Todos: todos, User: user, Form: form}
}

func (h *handler) createTodo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if _, err := h.todos.Create(c.UserContext(), user, c.FormValue("content")); err != nil {
		return h.todoFailed(c, "create", err)
	}
	return c.Redirect(HomePath, fiber.StatusSeeOther)
}

func (h *handler) deleteTodo(c *fiber.Ctx) error {
	id, err := todoID(c)
	if err == nil {
		err = h.todos.Delete(c.UserContext(), middleware.CurrentUser(c), id)
	}
	if err != nil {
		return h.todoFailed(c, "delete", err)
	}
	return c.Redirect(HomePath, fiber.StatusSeeOther)
}

func (h *handler) editTodo(c *fiber.Ctx) error {
	id, err := todoID(c)
	if err == nil {
		err = h.todos.Edit(c.UserContext(), middleware.CurrentUser(c), id, c.FormValue("content"))
	}
	if err != nil {
		return h.todoFailed(c, "edit", err)
	}
	return c.Redirect(HomePath, fiber.StatusSeeOther)
}

func (h *handler) toggleTodo(c *fiber.Ctx) error {
	id, err := todoID(c)
	if err == nil {
		done := c.FormValue("done") == "true"
		err = h.todos.Toggle(c.UserContext(), middleware.CurrentUser(c), id, done)
	}
	if err != nil {
		return h.todoFailed(c, "toggle", err)
	}
	return c.Redirect(HomePath, fiber.StatusSeeOther)
}

// todoFailed re-renders the home page with the reason the action failed.
func (h *handler) todoFailed(c *fiber.Ctx, action string, err error) error {
	status, msg := todoFailure(err)
	h.log.Warn(c.UserContext(), "todo action failed",
		"request_id", middleware.RequestIDFromCtx(c), "action", action, "status", status, "error", err)
	return render(c, status, "home", h.homeData(c, failed(msg, "")))
}

// todoFailure maps an action error to the page status and a safe message.
// Client errors of the remote API pass through, server errors become 502.
func todoFailure(err error) (int, string) {
	if rej, ok := apiclient.Rejection(err); ok {
		msg := rej.Message
		if msg == "" {
			msg = http.StatusText(rej.StatusCode)
		}
		if rej.StatusCode >= 400 && rej.StatusCode < 500 {
			return rej.StatusCode, msg
		}
		return fiber.StatusBadGateway, msg
	}
	switch {
	case errors.Is(err, service.ErrInvalidID):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, apiclient.ErrUnavailable):
		return fiber.StatusBadGateway, msgAPIDown
	default:
		return fiber.StatusInternalServerError, "something went wrong"
	}
}

func todoID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidID
	}
	return id, nil
}
