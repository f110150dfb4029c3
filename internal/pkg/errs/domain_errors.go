package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
