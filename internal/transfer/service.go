package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/apperr"
	"github.com/crossrent/crossrent/internal/ident"
	"github.com/crossrent/crossrent/internal/ledger"
	"github.com/crossrent/crossrent/internal/notification"
	"github.com/crossrent/crossrent/internal/wallet"
)

const defaultToken = "USDC"

// Service runs the simulated bridge and cross-chain transfer operations.
type Service struct {
	wallets  *wallet.Service
	ledger   ledger.Ledger
	creator  Creator
	notifier notification.Notifier
	now      func() time.Time
}

// NewService builds a transfer service. A nil creator falls back to the
// static simulation.
func NewService(wallets *wallet.Service, ledgerBackend ledger.Ledger, creator Creator, notifier notification.Notifier) *Service {
	if creator == nil {
		creator = StaticCreator{}
	}
	return &Service{wallets: wallets, ledger: ledgerBackend, creator: creator, notifier: notifier, now: time.Now}
}

// BridgeInput captures a bridge request.
type BridgeInput struct {
	WalletID           string
	SourceChain        string
	DestinationChain   string
	Amount             decimal.Decimal
	Token              string
	DestinationAddress string
}

// BridgeResult is the synthesized bridge receipt.
type BridgeResult struct {
	TransactionHash  string
	Amount           decimal.Decimal
	SourceChain      string
	DestinationChain string
	Status           string
}

// Bridge credits the bridged amount into the wallet. The demo holds only the
// destination-side wallet in this process, so bridging is a one-sided top-up
// rather than a debit-then-credit; the receipt reports PENDING like the real
// flow would.
func (s *Service) Bridge(ctx context.Context, input BridgeInput) (BridgeResult, error) {
	if strings.TrimSpace(input.WalletID) == "" || !input.Amount.IsPositive() {
		return BridgeResult{}, fmt.Errorf("wallet ID and a positive amount are required: %w", apperr.ErrInvalidRequest)
	}

	w, err := s.wallets.Get(ctx, input.WalletID)
	if err != nil {
		return BridgeResult{}, err
	}

	if _, err := s.ledger.Credit(ctx, wallet.AccountCode(w.ID), "bridge", uuid.NewString(), input.Amount); err != nil {
		return BridgeResult{}, err
	}

	return BridgeResult{
		TransactionHash:  ident.TxHash("cctp", s.now()),
		Amount:           input.Amount,
		SourceChain:      input.SourceChain,
		DestinationChain: input.DestinationChain,
		Status:           "PENDING",
	}, nil
}

// TransferInput captures a cross-chain transfer request.
type TransferInput struct {
	Amount             decimal.Decimal
	SourceChain        string
	DestinationChain   string
	SourceWalletID     string
	DestinationAddress string
	Token              string
}

// TransferResult is the synthesized transfer receipt.
type TransferResult struct {
	TransferID       string
	TransactionHash  string
	Amount           decimal.Decimal
	Token            string
	SourceChain      string
	DestinationChain string
	EstimatedTime    string
	Status           string
}

// Transfer initiates a cross-chain transfer: validate, call the outbound
// creator, then debit the source wallet. A creator failure aborts the whole
// operation with the ledger untouched.
func (s *Service) Transfer(ctx context.Context, input TransferInput) (TransferResult, error) {
	if !input.Amount.IsPositive() ||
		strings.TrimSpace(input.SourceChain) == "" ||
		strings.TrimSpace(input.DestinationChain) == "" ||
		strings.TrimSpace(input.SourceWalletID) == "" ||
		strings.TrimSpace(input.DestinationAddress) == "" {
		return TransferResult{}, fmt.Errorf("missing required parameters for transfer: %w", apperr.ErrInvalidRequest)
	}
	token := input.Token
	if token == "" {
		token = defaultToken
	}

	w, err := s.wallets.Get(ctx, input.SourceWalletID)
	if err != nil {
		return TransferResult{}, err
	}

	balance, err := s.ledger.Balance(ctx, wallet.AccountCode(w.ID))
	if err != nil {
		return TransferResult{}, err
	}
	if balance.LessThan(input.Amount) {
		return TransferResult{}, fmt.Errorf("balance %s below transfer amount %s: %w",
			balance, input.Amount, apperr.ErrInsufficientFunds)
	}

	decision, err := s.creator.Create(ctx, CreateRequest{
		SourceChain:        input.SourceChain,
		DestinationChain:   input.DestinationChain,
		Amount:             input.Amount,
		Token:              token,
		SourceAddress:      w.Address,
		DestinationAddress: input.DestinationAddress,
	})
	if err != nil {
		return TransferResult{}, fmt.Errorf("create transfer: %w", apperr.ErrUpstreamFailure)
	}

	if _, err := s.ledger.Debit(ctx, wallet.AccountCode(w.ID), "cctp", uuid.NewString(), input.Amount); err != nil {
		return TransferResult{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransferInitiated,
			Destination: w.OwnerID,
			Body: fmt.Sprintf("Transfer of %s %s from %s to %s initiated",
				input.Amount, token, input.SourceChain, input.DestinationChain),
		})
	}

	return TransferResult{
		TransferID:       decision.TransferID,
		TransactionHash:  decision.TransactionHash,
		Amount:           input.Amount,
		Token:            token,
		SourceChain:      input.SourceChain,
		DestinationChain: input.DestinationChain,
		EstimatedTime:    "10-15 minutes",
		Status:           decision.Status,
	}, nil
}

// Status reports the synthetic progress of a transfer at the current clock.
func (s *Service) Status(transferID string) StatusReport {
	return Status(transferID, s.now())
}
