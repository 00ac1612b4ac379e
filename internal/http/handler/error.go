package handler

import (
	"github.com/gofiber/fiber/v2"

	"todoweb/internal/http/middleware"
)

// apiError is the JSON body of failures outside the pages: probes and
// unknown routes. Pages report failures in their own form data instead.
type apiError struct {
	RequestID string      `json:"request_id"`
	Error     errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError sends status with a stable code and a message safe for the
// browser. The request id lets a visitor's report be matched to the logs.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(apiError{
		RequestID: middleware.RequestIDFromCtx(c),
		Error:     errorDetail{Code: code, Message: message},
	})
}

var errorCodes = map[int][2]string{
	fiber.StatusBadRequest:         {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:           {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed:   {"METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusServiceUnavailable: {"SERVICE_UNAVAILABLE", "dependency unavailable"},
}

// ErrorHandler renders errors that escape the handlers. Only the status of a
// *fiber.Error is kept; its message and any other error text stay in the
// logs.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		if known, ok := errorCodes[status]; ok {
			return writeError(c, status, known[0], known[1])
		}
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}
