package funding

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

// Service credits demo USDC into wallets. There is no funding source to
// debit, so top-ups apply unconditionally once the wallet is known.
type Service struct {
	wallets  *wallet.Service
	ledger   ledger.Ledger
	notifier notification.Notifier
	now      func() time.Time
}

// NewService builds a funding service.
func NewService(wallets *wallet.Service, ledgerBackend ledger.Ledger, notifier notification.Notifier) *Service {
	return &Service{wallets: wallets, ledger: ledgerBackend, notifier: notifier, now: time.Now}
}

// FundInput captures the data required for a wallet top-up.
type FundInput struct {
	WalletID string
	Amount   decimal.Decimal
	Currency string
}

// FundResult describes the outcome of a top-up.
type FundResult struct {
	TransactionHash string
	NewBalance      decimal.Decimal
}

// Fund credits the amount into the wallet and synthesizes a transaction hash.
func (s *Service) Fund(ctx context.Context, input FundInput) (FundResult, error) {
	if strings.TrimSpace(input.WalletID) == "" || !input.Amount.IsPositive() {
		return FundResult{}, fmt.Errorf("wallet ID and a positive amount are required: %w", apperr.ErrInvalidRequest)
	}

	w, err := s.wallets.Get(ctx, input.WalletID)
	if err != nil {
		return FundResult{}, err
	}

	posting, err := s.ledger.Credit(ctx, wallet.AccountCode(w.ID), "fund", uuid.NewString(), input.Amount)
	if err != nil {
		return FundResult{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindWalletFunded,
			Destination: w.OwnerID,
			Body:        fmt.Sprintf("Wallet %s funded with %s %s", w.ID, input.Amount, input.Currency),
		})
	}

	return FundResult{
		TransactionHash: ident.TxHash("fund", s.now()),
		NewBalance:      posting.Balance,
	}, nil
}
