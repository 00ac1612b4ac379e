package handler

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"todoweb/internal/apiclient"
	"todoweb/internal/http/middleware"
	"todoweb/internal/service"
)

func (h *handler) loginPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", LoginData{
		RegisteredEmail: c.Query("registeredEmail"),
		HasSession:      h.cookies.Token(c) != "",
	})
}

func (h *handler) login(c *fiber.Ctx) error {
	form := service.LoginForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	email := strings.TrimSpace(form.Email)

	res, err := h.auth.Login(c.UserContext(), form)
	if err != nil {
		status, msg := h.authFailure(c, "login", err)
		return render(c, status, "login", LoginData{Form: failed(msg, email)})
	}

	if err := h.cookies.Set(c, res.Token, res.ExpiresAt, h.now()); err != nil {
		h.log.Warn(c.UserContext(), "login returned an unusable session",
			"request_id", middleware.RequestIDFromCtx(c), "error", err)
		return render(c, fiber.StatusBadGateway, "login", LoginData{Form: failed("the API returned an expired session", email)})
	}

	h.log.Info(c.UserContext(), "user logged in",
		"request_id", middleware.RequestIDFromCtx(c), "user_id", res.ID)
	return c.Redirect(HomePath, fiber.StatusMovedPermanently)
}

func (h *handler) logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

func (h *handler) registerPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "register", RegisterData{})
}

func (h *handler) register(c *fiber.Ctx) error {
	form := service.RegisterForm{
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		PasswordConfirm: c.FormValue("passwordConfirm"),
	}
	email := strings.TrimSpace(form.Email)

	if _, err := h.auth.Register(c.UserContext(), form); err != nil {
		status, msg := h.authFailure(c, "register", err)
		return render(c, status, "register", RegisterData{Form: failed(msg, email)})
	}

	h.log.Info(c.UserContext(), "user registered",
		"request_id", middleware.RequestIDFromCtx(c), "email", email)
	return c.Redirect(LoginPath+"?registeredEmail="+url.QueryEscape(email), fiber.StatusMovedPermanently)
}

// authFailure maps a login or register error to the page status and message.
// Refusals by the remote API are reported as 405, an unreachable API as 400.
func (h *handler) authFailure(c *fiber.Ctx, action string, err error) (int, string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return fiber.StatusMethodNotAllowed, err.Error()
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, verr.Message
	}

	if rej, ok := apiclient.Rejection(err); ok {
		h.log.Info(c.UserContext(), action+" rejected",
			"request_id", middleware.RequestIDFromCtx(c), "status", rej.StatusCode)
		return fiber.StatusMethodNotAllowed, rej.Message
	}

	h.log.Warn(c.UserContext(), action+" failed",
		"request_id", middleware.RequestIDFromCtx(c), "error", err)
	return fiber.StatusBadRequest, msgAPIDown
}
