package commands

import (
	"context"

	"booking-admission/internal/pkg/dates"

	"github.com/google/uuid"
)

// Supplier kinds and ledger entry kinds as stored by the booking ledger.
const (
	SupplierTypeHotel   = "hotel"
	SupplierTypeAirline = "airline"

	LedgerKindBooking      = "booking"
	LedgerKindCancellation = "cancellation"
)

// LedgerEntry is one admitted inventory change to be recorded locally.
type LedgerEntry struct {
	SupplierID   string
	SupplierType string
	Kind         string
	Units        map[string]int
	Arrival      *dates.Date
	Departure    *dates.Date
	Currency     string
	Total        *float64
}

type BookingLedger interface {
	Record(ctx context.Context, entry LedgerEntry) (uuid.UUID, error)
}

// Idempotency statuses.
const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// IdempotencyState is the stored outcome for one idempotency key.
type IdempotencyState struct {
	Status      string     `json:"status"`
	RequestHash string     `json:"requestHash"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
}

// IdempotencyStore coordinates replay of duplicate booking submissions.
// Begin atomically claims the key and returns nil for a fresh claim, or the
// existing state when the key was already seen.
type IdempotencyStore interface {
	Begin(ctx context.Context, key uuid.UUID, requestHash string) (*IdempotencyState, error)
	Complete(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error
}
