package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crossrent/crossrent/internal/apperr"
	"github.com/crossrent/crossrent/internal/config"
	"github.com/crossrent/crossrent/internal/routes"
)

// Server wraps the Fiber application and shared dependencies.
type Server struct {
	app   *fiber.App
	cfg   config.Config
	cache *redis.Client
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
func New(cfg config.Config, cache *redis.Client, logger *slog.Logger) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler(logger),
	})

	if err := routes.Setup(app, routes.Deps{Cfg: cfg, Cache: cache, Logger: logger}); err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg, cache: cache}, nil
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler maps domain errors onto the wire shape the demo UI expects:
// {success:false, error, code}. Unclassified faults report a generic message
// so internal detail never leaks.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		message := "internal server error"
		code := apperr.Code(err)

		switch {
		case errors.Is(err, apperr.ErrInvalidRequest):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, apperr.ErrWalletNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, apperr.ErrInsufficientFunds):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, apperr.ErrUpstreamFailure):
			status = http.StatusBadGateway
			message = err.Error()
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
				message = fiberErr.Message
				if status == http.StatusBadRequest {
					code = "invalid_request"
				}
			} else if logger != nil {
				logger.Error("unhandled request error", "path", c.Path(), "error", err)
			}
		}

		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"code":    code,
		})
	}
}
