package apperr

import "errors"

// Sentinel errors for the caller-visible failure kinds. Services wrap these
// with fmt.Errorf("...: %w", ...) so handlers and the central error handler can
// classify with errors.Is while keeping a human-readable message.
var (
	// ErrInvalidRequest indicates missing or malformed required fields.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrWalletNotFound indicates the referenced wallet identifier is unknown.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientFunds indicates the operation would drive a balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUpstreamFailure indicates the outbound transfer-creation collaborator errored.
	ErrUpstreamFailure = errors.New("transfer service unavailable")
)

// Code returns the stable machine-readable code for err. Unrecognized errors
// classify as internal faults.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrWalletNotFound):
		return "wallet_not_found"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrUpstreamFailure):
		return "upstream_failure"
	default:
		return "internal"
	}
}
