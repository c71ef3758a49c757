package routes

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crossrent/crossrent/internal/wallet"
)

// RegisterHealthRoutes adds the health endpoint with a live wallet count.
func RegisterHealthRoutes(r fiber.Router, d Deps, wallets *wallet.Service) {
	r.Get("/health", func(c *fiber.Ctx) error {
		count, err := wallets.Count(c.UserContext())
		if err != nil {
			return err
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":       "healthy",
			"timestamp":    time.Now().UTC().Format(time.RFC3339Nano),
			"service":      d.Cfg.ServiceName,
			"walletsCount": count,
		})
	})
}
