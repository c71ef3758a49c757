package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crossrent/crossrent/internal/funding"
	"github.com/crossrent/crossrent/internal/wallet"
)

// RegisterWalletRoutes wires wallet creation, funding and balance endpoints.
func RegisterWalletRoutes(r fiber.Router, wh *wallet.Handler, fh *funding.Handler) {
	r.Post("/wallet/create", wh.Create)
	r.Post("/wallet/fund", fh.Fund)
	r.Get("/wallet/:walletId/balance", wh.Balance)
}
