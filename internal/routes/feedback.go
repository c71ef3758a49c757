package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crossrent/crossrent/internal/feedback"
)

// RegisterFeedbackRoutes wires feedback submission and reporting endpoints.
func RegisterFeedbackRoutes(r fiber.Router, h *feedback.Handler, limiter fiber.Handler) {
	r.Post("/feedback", limiter, h.Submit)
	r.Get("/feedback/stats", h.Stats)
	r.Get("/feedback", h.List)
}
