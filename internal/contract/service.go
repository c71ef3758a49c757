package contract

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

// Demo defaults: one month's rent and a standard security deposit.
var (
	defaultRentAmount    = decimal.NewFromInt(1000)
	defaultDepositAmount = decimal.NewFromInt(2000)
)

// placeholderGas is reported on every receipt; the demo performs no real
// execution so there is nothing to meter.
const placeholderGas = "21000"

// ExecuteInput names a contract method invocation against one wallet. A zero
// Amount selects the method's built-in default.
type ExecuteInput struct {
	WalletID        string
	ContractAddress string
	Method          string
	Amount          decimal.Decimal
}

// Receipt is the synthesized, non-persisted outcome of one method execution.
// Optional fields are set only by the method that produces them.
type Receipt struct {
	TransactionHash string
	Method          string
	ContractAddress string
	GasUsed         string
	EscrowID        string
	DisputeID       string
	AmountPaid      *decimal.Decimal
	AmountReleased  *decimal.Decimal
}

type methodFunc func(ctx context.Context, w wallet.Wallet, in ExecuteInput, r *Receipt) error

// Service interprets named contract methods against a single wallet as one
// logical unit: validate, mutate, synthesize a receipt. Methods are dispatched
// through a table built at construction; unknown methods fall through to a
// bare receipt with no balance effect.
type Service struct {
	wallets  *wallet.Service
	ledger   ledger.Ledger
	notifier notification.Notifier
	methods  map[string]methodFunc
	now      func() time.Time
}

// NewService constructs the dispatcher with the known method table.
func NewService(wallets *wallet.Service, ledgerBackend ledger.Ledger, notifier notification.Notifier) *Service {
	s := &Service{
		wallets:  wallets,
		ledger:   ledgerBackend,
		notifier: notifier,
		now:      time.Now,
	}
	s.methods = map[string]methodFunc{
		"createEscrow":   s.createEscrow,
		"payRent":        s.payRent,
		"releaseDeposit": s.releaseDeposit,
		"createDispute":  s.createDispute,
	}
	return s
}

// Execute runs one contract method. Required fields are checked before the
// wallet lookup; no error path leaves the ledger partially mutated.
func (s *Service) Execute(ctx context.Context, in ExecuteInput) (Receipt, error) {
	if strings.TrimSpace(in.WalletID) == "" ||
		strings.TrimSpace(in.ContractAddress) == "" ||
		strings.TrimSpace(in.Method) == "" {
		return Receipt{}, fmt.Errorf("wallet ID, contract address, and method are required: %w", apperr.ErrInvalidRequest)
	}

	w, err := s.wallets.Get(ctx, in.WalletID)
	if err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		TransactionHash: ident.TxHash("exec", s.now()),
		Method:          in.Method,
		ContractAddress: in.ContractAddress,
		GasUsed:         placeholderGas,
	}

	if fn, ok := s.methods[in.Method]; ok {
		if err := fn(ctx, w, in, &receipt); err != nil {
			return Receipt{}, err
		}
	}

	return receipt, nil
}

func (s *Service) createEscrow(_ context.Context, _ wallet.Wallet, in ExecuteInput, r *Receipt) error {
	r.EscrowID = ident.New("escrow", s.now()).String()
	r.ContractAddress = in.ContractAddress
	return nil
}

func (s *Service) payRent(ctx context.Context, w wallet.Wallet, in ExecuteInput, r *Receipt) error {
	amount := in.Amount
	if amount.IsZero() {
		amount = defaultRentAmount
	}

	if _, err := s.ledger.Debit(ctx, wallet.AccountCode(w.ID), "rent", uuid.NewString(), amount); err != nil {
		return err
	}
	r.AmountPaid = &amount

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindRentPaid,
			Destination: w.OwnerID,
			Body:        fmt.Sprintf("Rent of %s paid from wallet %s", amount, w.ID),
		})
	}
	return nil
}

func (s *Service) releaseDeposit(ctx context.Context, w wallet.Wallet, in ExecuteInput, r *Receipt) error {
	amount := in.Amount
	if amount.IsZero() {
		amount = defaultDepositAmount
	}

	if _, err := s.ledger.Credit(ctx, wallet.AccountCode(w.ID), "deposit", uuid.NewString(), amount); err != nil {
		return err
	}
	r.AmountReleased = &amount

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindDepositReleased,
			Destination: w.OwnerID,
			Body:        fmt.Sprintf("Deposit of %s released to wallet %s", amount, w.ID),
		})
	}
	return nil
}

func (s *Service) createDispute(_ context.Context, _ wallet.Wallet, _ ExecuteInput, r *Receipt) error {
	r.DisputeID = ident.New("dispute", s.now()).String()
	return nil
}

// SampleTransaction is the canned entry returned by transaction-status
// queries. Receipts are ephemeral, so there is no real log to look up.
type SampleTransaction struct {
	TransactionHash string
	Status          string
	BlockNumber     int
	Timestamp       time.Time
}

// StatusReport pairs the sample transactions with the live wallet balance.
type StatusReport struct {
	Transactions  []SampleTransaction
	WalletBalance decimal.Decimal
}

// SampleStatus verifies the wallet exists and returns fixed sample
// transaction data alongside its current balance.
func (s *Service) SampleStatus(ctx context.Context, walletID string) (StatusReport, error) {
	if strings.TrimSpace(walletID) == "" {
		return StatusReport{}, fmt.Errorf("wallet ID is required: %w", apperr.ErrInvalidRequest)
	}

	balance, err := s.wallets.Balance(ctx, walletID)
	if err != nil {
		return StatusReport{}, err
	}

	now := s.now()
	return StatusReport{
		Transactions: []SampleTransaction{{
			TransactionHash: ident.TxHash("sample", now),
			Status:          "CONFIRMED",
			BlockNumber:     12345,
			Timestamp:       now.UTC(),
		}},
		WalletBalance: balance.Amount,
	}, nil
}
