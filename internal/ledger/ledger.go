package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Posting captures the outcome of a single balance mutation.
type Posting struct {
	TransactionID string
	Balance       decimal.Decimal
}

// Ledger is the balance store behind every wallet operation. Implementations
// must serialize mutations per account so a validate-then-mutate sequence is
// atomic: a debit never leaves a partially applied or negative balance visible
// to other callers.
type Ledger interface {
	CreateAccount(ctx context.Context, code string, opening decimal.Decimal) error
	Balance(ctx context.Context, code string) (decimal.Decimal, error)
	Credit(ctx context.Context, code, kind, clientTxID string, amount decimal.Decimal) (Posting, error)
	Debit(ctx context.Context, code, kind, clientTxID string, amount decimal.Decimal) (Posting, error)
}
