package handler

import (
	"github.com/gofiber/fiber/v2"

	"todoweb/internal/model"
	"todoweb/internal/view"
)

// FormResult is the outcome of a form action shown back on the page.
type FormResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

func failed(message, email string) *FormResult {
	return &FormResult{Success: false, Message: message, Email: email}
}

// HomeData is the page data of "/". Todos is null when they could not be fetched.
type HomeData struct {
	Todos []model.Todo `json:"todos"`
	User  *model.User  `json:"user"`
	Form  *FormResult  `json:"form,omitempty"`
}

type LoginData struct {
	RegisteredEmail string      `json:"registeredEmail"`
	HasSession      bool        `json:"hasSession"`
	Form            *FormResult `json:"form,omitempty"`
}

type RegisterData struct {
	Form *FormResult `json:"form,omitempty"`
}

// render writes the page as HTML, or as JSON page data when the client
// prefers application/json.
func render(c *fiber.Ctx, status int, page string, data any) error {
	c.Status(status)
	if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		return c.JSON(data)
	}
	return c.Render(page, data, view.Layout)
}
