package queries

import (
	"context"
	"time"

	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// BookingView is the read model for one recorded ledger entry.
type BookingView struct {
	ID           uuid.UUID      `json:"id"`
	SupplierID   string         `json:"supplierId"`
	SupplierType string         `json:"supplierType"`
	Kind         string         `json:"kind"`
	Units        map[string]int `json:"units"`
	Arrival      *dates.Date    `json:"arrival,omitempty"`
	Departure    *dates.Date    `json:"departure,omitempty"`
	Currency     string         `json:"currency,omitempty"`
	Total        *float64       `json:"total,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBySupplier(ctx context.Context, supplierID string, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBySupplier(ctx context.Context, supplierID string, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBySupplier(ctx context.Context, supplierID string, limit int32) ([]*BookingView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return q.store.ListBySupplier(ctx, supplierID, limit)
}
