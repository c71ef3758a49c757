package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/apperr"
	"github.com/crossrent/crossrent/internal/ledger"
)

// Service exposes wallet operations backed by the ledger.
type Service struct {
	repo         Repository
	ledger       ledger.Ledger
	landlordSeed decimal.Decimal
}

// NewService builds a wallet service. landlordSeed is the demo convenience
// balance landlords start with; tenants always start at zero.
func NewService(repo Repository, ledgerBackend ledger.Ledger, landlordSeed decimal.Decimal) *Service {
	return &Service{repo: repo, ledger: ledgerBackend, landlordSeed: landlordSeed}
}

// Create provisions a wallet with a synthesized address and opens its ledger
// account.
func (s *Service) Create(ctx context.Context, role string) (Wallet, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return Wallet{}, fmt.Errorf("user type is required: %w", apperr.ErrInvalidRequest)
	}

	address, err := NewAddress()
	if err != nil {
		return Wallet{}, err
	}

	w := Wallet{
		ID:        uuid.NewString(),
		OwnerID:   uuid.NewString(),
		Address:   address,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	opening := decimal.Zero
	if role == RoleLandlord {
		opening = s.landlordSeed
	}
	if err := s.ledger.CreateAccount(ctx, AccountCode(w.ID), opening); err != nil {
		return Wallet{}, err
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return Wallet{}, err
	}

	return w, nil
}

// Get retrieves wallet metadata.
func (s *Service) Get(ctx context.Context, id string) (Wallet, error) {
	if strings.TrimSpace(id) == "" {
		return Wallet{}, fmt.Errorf("wallet ID is required: %w", apperr.ErrInvalidRequest)
	}
	return s.repo.Get(ctx, id)
}

// Balance returns the ledger balance for the wallet.
func (s *Service) Balance(ctx context.Context, id string) (Balance, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return Balance{}, err
	}
	amount, err := s.ledger.Balance(ctx, AccountCode(w.ID))
	if err != nil {
		return Balance{}, err
	}
	return Balance{WalletID: w.ID, Amount: amount, AsOf: time.Now().UTC()}, nil
}

// Count reports how many wallets exist in this process.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
