package wallet

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	UserType string `json:"userType"`
}

type createResponse struct {
	Success  bool   `json:"success"`
	WalletID string `json:"walletId"`
	UserID   string `json:"userId"`
	Address  string `json:"address"`
	UserType string `json:"userType"`
}

// Create provisions a wallet for a tenant or landlord.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	w, err := h.service.Create(c.UserContext(), req.UserType)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(createResponse{
		Success:  true,
		WalletID: w.ID,
		UserID:   w.OwnerID,
		Address:  w.Address,
		UserType: w.Role,
	})
}

// Balance returns the current wallet balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	balance, err := h.service.Balance(c.UserContext(), c.Params("walletId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":  true,
		"walletId": balance.WalletID,
		"balance":  balance.Amount,
		"asOf":     balance.AsOf,
	})
}
