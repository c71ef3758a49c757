package contract

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handler exposes contract execution HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a contract HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type executeArgs struct {
	Amount decimal.Decimal `json:"amount"`
}

type executeRequest struct {
	WalletID        string      `json:"walletId"`
	ContractAddress string      `json:"contractAddress"`
	Method          string      `json:"method"`
	Args            executeArgs `json:"args"`
}

type executeResponse struct {
	Success         bool             `json:"success"`
	TransactionHash string           `json:"transactionHash"`
	Method          string           `json:"method"`
	ContractAddress string           `json:"contractAddress"`
	GasUsed         string           `json:"gasUsed"`
	EscrowID        string           `json:"escrowId,omitempty"`
	DisputeID       string           `json:"disputeId,omitempty"`
	AmountPaid      *decimal.Decimal `json:"amountPaid,omitempty"`
	AmountReleased  *decimal.Decimal `json:"amountReleased,omitempty"`
}

// Execute runs a named contract method against a wallet.
func (h *Handler) Execute(c *fiber.Ctx) error {
	var req executeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	receipt, err := h.service.Execute(c.UserContext(), ExecuteInput{
		WalletID:        req.WalletID,
		ContractAddress: req.ContractAddress,
		Method:          req.Method,
		Amount:          req.Args.Amount,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(executeResponse{
		Success:         true,
		TransactionHash: receipt.TransactionHash,
		Method:          receipt.Method,
		ContractAddress: receipt.ContractAddress,
		GasUsed:         receipt.GasUsed,
		EscrowID:        receipt.EscrowID,
		DisputeID:       receipt.DisputeID,
		AmountPaid:      receipt.AmountPaid,
		AmountReleased:  receipt.AmountReleased,
	})
}

type statusRequest struct {
	WalletID string `json:"walletId"`
}

type sampleTransactionResponse struct {
	TransactionHash string    `json:"transactionHash"`
	Status          string    `json:"status"`
	BlockNumber     int       `json:"blockNumber"`
	Timestamp       time.Time `json:"timestamp"`
}

// TransactionStatus reports fixed sample transaction data plus the live
// wallet balance.
func (h *Handler) TransactionStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	report, err := h.service.SampleStatus(c.UserContext(), req.WalletID)
	if err != nil {
		return err
	}

	transactions := make([]sampleTransactionResponse, 0, len(report.Transactions))
	for _, tx := range report.Transactions {
		transactions = append(transactions, sampleTransactionResponse{
			TransactionHash: tx.TransactionHash,
			Status:          tx.Status,
			BlockNumber:     tx.BlockNumber,
			Timestamp:       tx.Timestamp,
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":       true,
		"transactions":  transactions,
		"walletBalance": report.WalletBalance,
	})
}
