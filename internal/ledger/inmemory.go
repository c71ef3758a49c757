package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/apperr"
)

type account struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

type inMemoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

// NewInMemory creates the process-lifetime balance store. Mutations on one
// account are serialized by that account's lock; distinct accounts proceed in
// parallel. Nothing survives a restart.
func NewInMemory() Ledger {
	return &inMemoryLedger{accounts: make(map[string]*account)}
}

func (l *inMemoryLedger) CreateAccount(_ context.Context, code string, opening decimal.Decimal) error {
	if opening.IsNegative() {
		return fmt.Errorf("opening balance must not be negative: %w", apperr.ErrInvalidRequest)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[code]; exists {
		return fmt.Errorf("account %s already exists: %w", code, apperr.ErrInvalidRequest)
	}
	l.accounts[code] = &account{balance: opening}
	return nil
}

func (l *inMemoryLedger) lookup(code string) (*account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.accounts[code]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", code, apperr.ErrWalletNotFound)
	}
	return acct, nil
}

func (l *inMemoryLedger) Balance(_ context.Context, code string) (decimal.Decimal, error) {
	acct, err := l.lookup(code)
	if err != nil {
		return decimal.Zero, err
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	return acct.balance, nil
}

func (l *inMemoryLedger) Credit(_ context.Context, code, kind, clientTxID string, amount decimal.Decimal) (Posting, error) {
	if !amount.IsPositive() {
		return Posting{}, fmt.Errorf("amount must be positive: %w", apperr.ErrInvalidRequest)
	}
	acct, err := l.lookup(code)
	if err != nil {
		return Posting{}, err
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()

	acct.balance = acct.balance.Add(amount)
	return Posting{TransactionID: kind + ":" + clientTxID, Balance: acct.balance}, nil
}

func (l *inMemoryLedger) Debit(_ context.Context, code, kind, clientTxID string, amount decimal.Decimal) (Posting, error) {
	if !amount.IsPositive() {
		return Posting{}, fmt.Errorf("amount must be positive: %w", apperr.ErrInvalidRequest)
	}
	acct, err := l.lookup(code)
	if err != nil {
		return Posting{}, err
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()

	// Sufficiency is checked under the account lock so the balance can never
	// go negative, regardless of what callers checked beforehand.
	if acct.balance.LessThan(amount) {
		return Posting{}, fmt.Errorf("balance %s below requested %s: %w",
			acct.balance, amount, apperr.ErrInsufficientFunds)
	}

	acct.balance = acct.balance.Sub(amount)
	return Posting{TransactionID: kind + ":" + clientTxID, Balance: acct.balance}, nil
}
