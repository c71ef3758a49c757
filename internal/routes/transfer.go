package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crossrent/crossrent/internal/transfer"
)

// RegisterTransferRoutes wires the bridge and cross-chain transfer endpoints.
func RegisterTransferRoutes(r fiber.Router, h *transfer.Handler) {
	r.Post("/usdc/bridge", h.Bridge)
	r.Post("/cctp/transfer", h.Transfer)
	r.Get("/cctp/transfer/:transferId", h.Status)
}
