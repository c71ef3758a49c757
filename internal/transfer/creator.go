package transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crossrent/crossrent/internal/ident"
)

// Creator is the outbound transfer-creation collaborator. A real deployment
// would call Circle's CCTP API here; the demo ships a static simulation. Any
// error from Create must fail the whole operation before the ledger is
// touched.
type Creator interface {
	Create(ctx context.Context, request CreateRequest) (CreateDecision, error)
}

// CreateRequest carries the details of an outbound cross-chain transfer.
type CreateRequest struct {
	SourceChain        string
	DestinationChain   string
	Amount             decimal.Decimal
	Token              string
	SourceAddress      string
	DestinationAddress string
}

// CreateDecision is the collaborator's answer: an identifier whose trailing
// segment encodes the creation time, a transaction hash, and an initial status.
type CreateDecision struct {
	TransferID      string
	TransactionHash string
	Status          string
}

// StaticCreator simulates a successful transfer-creation call.
type StaticCreator struct{}

// Create issues a time-stamped transfer identifier with status initiated.
func (StaticCreator) Create(_ context.Context, _ CreateRequest) (CreateDecision, error) {
	now := time.Now()
	return CreateDecision{
		TransferID:      ident.New("cctp", now).String(),
		TransactionHash: ident.TxHash("cctp", now),
		Status:          "initiated",
	}, nil
}
