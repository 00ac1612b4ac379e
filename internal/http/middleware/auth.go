package middleware

import (
	"github.com/gofiber/fiber/v2"

	"todoweb/internal/apiclient"
	"todoweb/internal/logging"
	"todoweb/internal/model"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

// UserLocalKey is the locals key holding the authenticated *model.User.
const UserLocalKey = "user"

// CurrentUser returns the user stored by Authenticate, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}

// Authenticate resolves the session cookie to a user on every request.
//
// A token the remote API rejects with a 4xx is deleted from the client. When
// the API cannot be reached or answers 5xx the request continues anonymously
// and the cookie is kept.
func Authenticate(auth service.AuthService, cookies *session.Cookies, log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := cookies.Token(c)
		if token == "" {
			return c.Next()
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if rej, ok := apiclient.Rejection(err); ok && rej.StatusCode < 500 {
				log.Info(c.UserContext(), "session rejected",
					"request_id", RequestIDFromCtx(c), "status", rej.StatusCode, "reason", rej.Message)
				cookies.Clear(c)
			} else {
				log.Warn(c.UserContext(), "session check failed",
					"request_id", RequestIDFromCtx(c), "error", err)
			}
			return c.Next()
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// RequireUser redirects anonymous visitors to loginPath.
func RequireUser(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RedirectAuthenticated sends visitors that already have a session to home.
func RedirectAuthenticated(home string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) != nil {
			return c.Redirect(home, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
