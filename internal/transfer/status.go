package transfer

import (
	"fmt"
	"time"

	"github.com/crossrent/crossrent/internal/ident"
)

// Transfer status labels.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const (
	completionDelay     = 5 * time.Second
	confirmationStep    = 500 * time.Millisecond
	totalConfirmations  = 12
	maxPendingConfirmed = totalConfirmations - 1
)

// StatusReport is the synthetic progress of a cross-chain transfer.
type StatusReport struct {
	TransferID          string
	Status              string
	Confirmations       string
	EstimatedCompletion string
}

// Status derives a transfer's progress purely from the creation time embedded
// in its identifier and the supplied clock. No stored transfer state exists,
// so two calls for the same id always agree up to clock skew. An id without a
// parseable timestamp reports zero elapsed time.
func Status(transferID string, now time.Time) StatusReport {
	var elapsed time.Duration
	if tok, err := ident.Parse(transferID); err == nil {
		elapsed = now.Sub(tok.CreatedAt)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	report := StatusReport{TransferID: transferID}
	if elapsed > completionDelay {
		report.Status = StatusCompleted
		report.Confirmations = fmt.Sprintf("%d/%d", totalConfirmations, totalConfirmations)
		report.EstimatedCompletion = "Complete"
		return report
	}

	confirmed := int(elapsed / confirmationStep)
	if confirmed > maxPendingConfirmed {
		confirmed = maxPendingConfirmed
	}
	remaining := int(completionDelay/time.Second) - int(elapsed/time.Second)
	if remaining < 0 {
		remaining = 0
	}

	report.Status = StatusPending
	report.Confirmations = fmt.Sprintf("%d/%d", confirmed, totalConfirmations)
	report.EstimatedCompletion = fmt.Sprintf("%ds remaining", remaining)
	return report
}
