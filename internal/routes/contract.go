package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crossrent/crossrent/internal/contract"
)

// RegisterContractRoutes wires contract execution and transaction status endpoints.
func RegisterContractRoutes(r fiber.Router, h *contract.Handler) {
	r.Post("/contract/execute", h.Execute)
	r.Post("/transactions/status", h.TransactionStatus)
}
