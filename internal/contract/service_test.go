package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/apperr"
	"github.com/crossrent/crossrent/internal/ident"
	"github.com/crossrent/crossrent/internal/ledger"
	"github.com/crossrent/crossrent/internal/wallet"
)

const contractAddr = "0x000000000000000000000000000000000000c0de"

func newTestFixture(t *testing.T, role string) (*Service, *wallet.Service, wallet.Wallet, ledger.Ledger) {
	t.Helper()
	led := ledger.NewInMemory()
	walletSvc := wallet.NewService(wallet.NewMemoryRepository(), led, decimal.NewFromInt(100))
	svc := NewService(walletSvc, led, nil)

	w, err := walletSvc.Create(context.Background(), role)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	return svc, walletSvc, w, led
}

func mustBalance(t *testing.T, ws *wallet.Service, id string) decimal.Decimal {
	t.Helper()
	b, err := ws.Balance(context.Background(), id)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	return b.Amount
}

func TestExecuteRequiresFields(t *testing.T) {
	svc, _, w, _ := newTestFixture(t, wallet.RoleTenant)
	ctx := context.Background()

	cases := []ExecuteInput{
		{ContractAddress: contractAddr, Method: "payRent"},
		{WalletID: w.ID, Method: "payRent"},
		{WalletID: w.ID, ContractAddress: contractAddr},
	}
	for i, in := range cases {
		if _, err := svc.Execute(ctx, in); !errors.Is(err, apperr.ErrInvalidRequest) {
			t.Fatalf("case %d: expected invalid request, got %v", i, err)
		}
	}
}

func TestExecuteUnknownWallet(t *testing.T) {
	svc, _, _, _ := newTestFixture(t, wallet.RoleTenant)

	in := ExecuteInput{WalletID: "missing", ContractAddress: contractAddr, Method: "payRent"}
	if _, err := svc.Execute(context.Background(), in); !errors.Is(err, apperr.ErrWalletNotFound) {
		t.Fatalf("expected wallet not found, got %v", err)
	}
}

func TestPayRentScenario(t *testing.T) {
	// Landlord seeded with 100, funded with 50 more.
	svc, walletSvc, w, led := newTestFixture(t, wallet.RoleLandlord)
	ctx := context.Background()

	if _, err := led.Credit(ctx, wallet.AccountCode(w.ID), "fund", "seed", decimal.NewFromInt(50)); err != nil {
		t.Fatalf("fund: %v", err)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected balance 150, got %s", got)
	}

	// Rent of 1000 exceeds the balance and must leave it untouched.
	_, err := svc.Execute(ctx, ExecuteInput{
		WalletID:        w.ID,
		ContractAddress: contractAddr,
		Method:          "payRent",
		Amount:          decimal.NewFromInt(1000),
	})
	if !errors.Is(err, apperr.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("balance changed on rejected payment: %s", got)
	}

	// Rent of 100 succeeds and debits exactly that amount.
	receipt, err := svc.Execute(ctx, ExecuteInput{
		WalletID:        w.ID,
		ContractAddress: contractAddr,
		Method:          "payRent",
		Amount:          decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("pay rent: %v", err)
	}
	if receipt.AmountPaid == nil || !receipt.AmountPaid.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected amount paid: %v", receipt.AmountPaid)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected balance 50, got %s", got)
	}
}

func TestPayRentDefaultsToThousand(t *testing.T) {
	svc, walletSvc, w, led := newTestFixture(t, wallet.RoleTenant)
	ctx := context.Background()
	ledger.SeedBalance(led, wallet.AccountCode(w.ID), decimal.NewFromInt(2500))

	receipt, err := svc.Execute(ctx, ExecuteInput{WalletID: w.ID, ContractAddress: contractAddr, Method: "payRent"})
	if err != nil {
		t.Fatalf("pay rent: %v", err)
	}
	if receipt.AmountPaid == nil || !receipt.AmountPaid.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected default rent 1000, got %v", receipt.AmountPaid)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected balance 1500, got %s", got)
	}
}

func TestPayRentEmptyTenantRejected(t *testing.T) {
	svc, walletSvc, w, _ := newTestFixture(t, wallet.RoleTenant)

	_, err := svc.Execute(context.Background(), ExecuteInput{
		WalletID:        w.ID,
		ContractAddress: contractAddr,
		Method:          "payRent",
		Amount:          decimal.NewFromInt(1),
	})
	if !errors.Is(err, apperr.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("tenant balance changed: %s", got)
	}
}

func TestReleaseDepositDefaultsToTwoThousand(t *testing.T) {
	svc, walletSvc, w, _ := newTestFixture(t, wallet.RoleTenant)

	receipt, err := svc.Execute(context.Background(), ExecuteInput{
		WalletID:        w.ID,
		ContractAddress: contractAddr,
		Method:          "releaseDeposit",
	})
	if err != nil {
		t.Fatalf("release deposit: %v", err)
	}
	if receipt.AmountReleased == nil || !receipt.AmountReleased.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected default deposit 2000, got %v", receipt.AmountReleased)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected balance 2000, got %s", got)
	}
}

func TestCreateEscrowAndDisputeIssueParseableIDs(t *testing.T) {
	svc, walletSvc, w, _ := newTestFixture(t, wallet.RoleTenant)
	ctx := context.Background()

	escrow, err := svc.Execute(ctx, ExecuteInput{WalletID: w.ID, ContractAddress: contractAddr, Method: "createEscrow"})
	if err != nil {
		t.Fatalf("create escrow: %v", err)
	}
	if escrow.EscrowID == "" {
		t.Fatalf("missing escrow id")
	}
	if tok, err := ident.Parse(escrow.EscrowID); err != nil || tok.Prefix != "escrow" {
		t.Fatalf("escrow id %q not parseable: %v", escrow.EscrowID, err)
	}
	if escrow.ContractAddress != contractAddr {
		t.Fatalf("contract address not echoed: %q", escrow.ContractAddress)
	}

	dispute, err := svc.Execute(ctx, ExecuteInput{WalletID: w.ID, ContractAddress: contractAddr, Method: "createDispute"})
	if err != nil {
		t.Fatalf("create dispute: %v", err)
	}
	if tok, err := ident.Parse(dispute.DisputeID); err != nil || tok.Prefix != "dispute" {
		t.Fatalf("dispute id %q not parseable: %v", dispute.DisputeID, err)
	}

	// Neither method moves funds.
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("balance changed by escrow/dispute: %s", got)
	}
}

func TestUnknownMethodFallsThrough(t *testing.T) {
	svc, walletSvc, w, _ := newTestFixture(t, wallet.RoleTenant)

	receipt, err := svc.Execute(context.Background(), ExecuteInput{
		WalletID:        w.ID,
		ContractAddress: contractAddr,
		Method:          "renegotiateLease",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if receipt.GasUsed != placeholderGas {
		t.Fatalf("expected placeholder gas, got %q", receipt.GasUsed)
	}
	if receipt.AmountPaid != nil || receipt.AmountReleased != nil || receipt.EscrowID != "" || receipt.DisputeID != "" {
		t.Fatalf("fallthrough receipt carries method fields: %+v", receipt)
	}
	if got := mustBalance(t, walletSvc, w.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("balance changed by unknown method: %s", got)
	}
}

func TestSampleStatusReturnsFixedData(t *testing.T) {
	svc, _, w, led := newTestFixture(t, wallet.RoleTenant)
	ctx := context.Background()
	ledger.SeedBalance(led, wallet.AccountCode(w.ID), decimal.NewFromInt(75))

	report, err := svc.SampleStatus(ctx, w.ID)
	if err != nil {
		t.Fatalf("sample status: %v", err)
	}
	if len(report.Transactions) != 1 || report.Transactions[0].Status != "CONFIRMED" {
		t.Fatalf("unexpected sample transactions: %+v", report.Transactions)
	}
	if report.Transactions[0].BlockNumber != 12345 {
		t.Fatalf("unexpected block number: %d", report.Transactions[0].BlockNumber)
	}
	if !report.WalletBalance.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected live balance 75, got %s", report.WalletBalance)
	}

	if _, err := svc.SampleStatus(ctx, "missing"); !errors.Is(err, apperr.ErrWalletNotFound) {
		t.Fatalf("expected wallet not found, got %v", err)
	}
}
