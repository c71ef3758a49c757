package funding

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handler exposes the wallet funding HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a funding handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type fundRequest struct {
	WalletID string          `json:"walletId"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type fundResponse struct {
	Success         bool            `json:"success"`
	TransactionHash string          `json:"transactionHash"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}

// Fund processes a wallet top-up.
func (h *Handler) Fund(c *fiber.Ctx) error {
	var req fundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Fund(c.UserContext(), FundInput{
		WalletID: req.WalletID,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fundResponse{
		Success:         true,
		TransactionHash: result.TransactionHash,
		NewBalance:      result.NewBalance,
	})
}
