package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todoweb/internal/http/middleware"
	"todoweb/internal/logging"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

const (
	HomePath  = "/"
	LoginPath = "/login"

	healthTimeout = 2 * time.Second
)

// HealthChecker reports whether the remote API is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps are the collaborators of the page handlers.
type Deps struct {
	Auth    service.AuthService
	Todos   service.TodoService
	Cookies *session.Cookies
	API     HealthChecker
	Logger  logging.Logger
	// Gatherer backs /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer
	// Now defaults to time.Now.
	Now func() time.Time
}

type handler struct {
	auth    service.AuthService
	todos   service.TodoService
	cookies *session.Cookies
	log     logging.Logger
	now     func() time.Time
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
//
// Only the page routes resolve the session cookie; probes, scrapes and
// unknown paths never reach the remote /api/check.
func RegisterRoutes(app *fiber.App, deps Deps) {
	h := &handler{
		auth:    deps.Auth,
		todos:   deps.Todos,
		cookies: deps.Cookies,
		log:     deps.Logger,
		now:     deps.Now,
	}
	if h.log == nil {
		h.log = logging.Nop()
	}
	if h.now == nil {
		h.now = time.Now
	}

	// Readiness: the remote API is the only dependency
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.API == nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := deps.API.Health(ctx); err != nil {
			h.log.Warn(ctx, "health check failed", "request_id", middleware.RequestIDFromCtx(c), "error", err)
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Liveness
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	if deps.Gatherer != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// The session gate is attached per route so unmatched paths (favicon.ico
	// and friends) 404 without a remote /api/check.
	gate := middleware.Authenticate(deps.Auth, deps.Cookies, h.log)

	guest := middleware.RedirectAuthenticated(HomePath)
	app.Get(LoginPath, gate, guest, h.loginPage)
	app.Post(LoginPath, gate, guest, h.login)
	app.Get("/register", gate, guest, h.registerPage)
	app.Post("/register", gate, guest, h.register)
	app.Get("/logout", h.logout)

	member := middleware.RequireUser(LoginPath)
	app.Get(HomePath, gate, member, h.home)
	app.Post("/todos", gate, member, h.createTodo)
	app.Post("/todos/:id/delete", gate, member, h.deleteTodo)
	app.Post("/todos/:id/edit", gate, member, h.editTodo)
	app.Post("/todos/:id/toggle", gate, member, h.toggleTodo)
}
