package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"todoweb/internal/apiclient"
	"todoweb/internal/config"
	handlers "todoweb/internal/http/handler"
	"todoweb/internal/http/middleware"
	"todoweb/internal/logging"
	"todoweb/internal/otel"
	"todoweb/internal/service"
	"todoweb/internal/session"
	"todoweb/internal/view"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Log.Location()
	log := logging.NewJSON(os.Stdout, cfg.Log.Level, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error(ctx, "failed to initialize tracing", "error", err)
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn(sctx, "tracing shutdown failed", "error", err)
		}
	}()

	// Remote todo API client and the services on top of it
	api, err := apiclient.NewHTTPClient(cfg.API)
	if err != nil {
		log.Error(ctx, "failed to create api client", "error", err)
		return err
	}
	authSvc := service.NewAuthService(api)
	todoSvc := service.NewTodoService(api)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error(ctx, "failed to register metrics", "error", err)
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		Views:                 view.New(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID runs after otelfiber so the ID lands on the server span
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Auth:     authSvc,
		Todos:    todoSvc,
		Cookies:  session.NewCookies(cfg.Session),
		API:      api,
		Logger:   log,
		Gatherer: reg,
	})

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "server starting", "addr", addr, "api_url", cfg.API.BaseURL)
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Error(ctx, "failed to start server", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error(context.Background(), "graceful shutdown failed", "error", err)
		return err
	}
	return nil
}
