package funding

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/apperr"
	"github.com/crossrent/crossrent/internal/ledger"
	"github.com/crossrent/crossrent/internal/wallet"
)

func newTestService(t *testing.T) (*Service, *wallet.Service) {
	t.Helper()
	led := ledger.NewInMemory()
	walletSvc := wallet.NewService(wallet.NewMemoryRepository(), led, decimal.NewFromInt(100))
	return NewService(walletSvc, led, nil), walletSvc
}

func TestFundCreditsImmediately(t *testing.T) {
	svc, walletSvc := newTestService(t)
	ctx := context.Background()

	w, err := walletSvc.Create(ctx, wallet.RoleLandlord)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}

	result, err := svc.Fund(ctx, FundInput{WalletID: w.ID, Amount: decimal.NewFromInt(50), Currency: "USDC"})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}

	if !result.NewBalance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected new balance 150, got %s", result.NewBalance)
	}
	if !strings.HasPrefix(result.TransactionHash, "0xfund") {
		t.Fatalf("unexpected hash: %q", result.TransactionHash)
	}

	// The credit is visible to an immediate read.
	balance, err := walletSvc.Balance(ctx, w.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("read after fund: expected 150, got %s", balance.Amount)
	}
}

func TestFundValidation(t *testing.T) {
	svc, walletSvc := newTestService(t)
	ctx := context.Background()

	w, _ := walletSvc.Create(ctx, wallet.RoleTenant)

	if _, err := svc.Fund(ctx, FundInput{Amount: decimal.NewFromInt(10)}); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("expected invalid request without wallet id, got %v", err)
	}
	if _, err := svc.Fund(ctx, FundInput{WalletID: w.ID}); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("expected invalid request without amount, got %v", err)
	}
	if _, err := svc.Fund(ctx, FundInput{WalletID: "missing", Amount: decimal.NewFromInt(10)}); !errors.Is(err, apperr.ErrWalletNotFound) {
		t.Fatalf("expected wallet not found, got %v", err)
	}
}
