package feedback

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes feedback HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a feedback handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type submitRequest struct {
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	Features  []string `json:"features"`
	Timestamp string   `json:"timestamp"`
}

// Submit records a feedback entry.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var ts time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err == nil {
			ts = parsed
		}
	}

	id, err := h.service.Submit(c.UserContext(), SubmitInput{
		Rating:    req.Rating,
		Comment:   req.Comment,
		Features:  req.Features,
		Timestamp: ts,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Feedback submitted successfully",
		"feedbackId": id,
	})
}

// Stats reports the feedback aggregate summary.
func (h *Handler) Stats(c *fiber.Ctx) error {
	stats := h.service.Stats(c.UserContext())

	topFeatures := make([]fiber.Map, 0, len(stats.TopFeatures))
	for _, f := range stats.TopFeatures {
		topFeatures = append(topFeatures, fiber.Map{"feature": f.Feature, "votes": f.Votes})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"totalUsers":     stats.TotalUsers,
			"averageRating":  stats.AverageRating,
			"totalFeedback":  stats.TotalFeedback,
			"topFeatures":    topFeatures,
			"recentComments": stats.RecentComments,
		},
	})
}

// List returns all feedback entries, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	entries := h.service.List(c.UserContext())

	payload := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, fiber.Map{
			"id":        e.ID,
			"timestamp": e.Timestamp,
			"rating":    e.Rating,
			"comment":   e.Comment,
			"features":  e.Features,
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":  true,
		"feedback": payload,
		"total":    len(payload),
	})
}
