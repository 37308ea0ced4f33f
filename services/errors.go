package services

import "errors"

// Error taxonomy shared by all services. Controllers match with errors.Is
// and map each kind to one HTTP status.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrTxFailed wraps store-level failures inside a multi-statement
	// write. Never retried here; the caller retries the whole request.
	ErrTxFailed = errors.New("transaction failed")
)
