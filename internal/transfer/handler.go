package transfer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handler exposes bridge and cross-chain transfer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a transfer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type bridgeRequest struct {
	WalletID           string          `json:"walletId"`
	SourceChain        string          `json:"sourceChain"`
	DestinationChain   string          `json:"destinationChain"`
	Amount             decimal.Decimal `json:"amount"`
	Token              string          `json:"token"`
	DestinationAddress string          `json:"destinationAddress"`
}

// Bridge simulates bridging USDC into the wallet.
func (h *Handler) Bridge(c *fiber.Ctx) error {
	var req bridgeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Bridge(c.UserContext(), BridgeInput{
		WalletID:           req.WalletID,
		SourceChain:        req.SourceChain,
		DestinationChain:   req.DestinationChain,
		Amount:             req.Amount,
		Token:              req.Token,
		DestinationAddress: req.DestinationAddress,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":          true,
		"transactionHash":  result.TransactionHash,
		"amount":           result.Amount,
		"sourceChain":      result.SourceChain,
		"destinationChain": result.DestinationChain,
		"status":           result.Status,
	})
}

type transferRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	SourceChain        string          `json:"sourceChain"`
	DestinationChain   string          `json:"destinationChain"`
	SourceWalletID     string          `json:"sourceWalletId"`
	DestinationAddress string          `json:"destinationAddress"`
	Token              string          `json:"token"`
}

// Transfer initiates a cross-chain transfer from the source wallet.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Transfer(c.UserContext(), TransferInput{
		Amount:             req.Amount,
		SourceChain:        req.SourceChain,
		DestinationChain:   req.DestinationChain,
		SourceWalletID:     req.SourceWalletID,
		DestinationAddress: req.DestinationAddress,
		Token:              req.Token,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":          true,
		"transferId":       result.TransferID,
		"transactionHash":  result.TransactionHash,
		"amount":           result.Amount,
		"token":            result.Token,
		"sourceChain":      result.SourceChain,
		"destinationChain": result.DestinationChain,
		"estimatedTime":    result.EstimatedTime,
		"status":           result.Status,
	})
}

// Status reports the synthetic progress of a transfer by id.
func (h *Handler) Status(c *fiber.Ctx) error {
	report := h.service.Status(c.Params("transferId"))
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":             true,
		"transferId":          report.TransferID,
		"status":              report.Status,
		"confirmations":       report.Confirmations,
		"estimatedCompletion": report.EstimatedCompletion,
	})
}
