// Package ledger persists admitted bookings and cancellations in the local
// store. It is a plain keyed record of what the engine admitted; the remote
// supplier inventory stays the source of truth for availability.
package ledger

import (
	"context"
	"encoding/json"
	"time"

	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/usecase/commands"
	"booking-admission/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingLedger struct {
	db *pgxpool.Pool
}

func NewBookingLedger(db *pgxpool.Pool) *BookingLedger {
	return &BookingLedger{db: db}
}

const insertEntry = `
INSERT INTO booking_ledger (id, supplier_id, supplier_type, kind, units, arrival, departure, currency, total, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (l *BookingLedger) Record(ctx context.Context, entry commands.LedgerEntry) (uuid.UUID, error) {
	id := uuid.New()

	units, err := json.Marshal(entry.Units)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode ledger units", err)
	}

	_, err = l.db.Exec(ctx, insertEntry,
		id,
		entry.SupplierID,
		entry.SupplierType,
		entry.Kind,
		units,
		datePtrToTime(entry.Arrival),
		datePtrToTime(entry.Departure),
		nullableString(entry.Currency),
		entry.Total,
		time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record ledger entry", err)
	}
	return id, nil
}

const selectByID = `
SELECT id, supplier_id, supplier_type, kind, units, arrival, departure, currency, total, created_at
FROM booking_ledger
WHERE id = $1`

func (l *BookingLedger) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanView(l.db.QueryRow(ctx, selectByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("ledger record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ledger record by ID", err)
	}
	return view, nil
}

const selectBySupplier = `
SELECT id, supplier_id, supplier_type, kind, units, arrival, departure, currency, total, created_at
FROM booking_ledger
WHERE supplier_id = $1
ORDER BY created_at DESC
LIMIT $2`

func (l *BookingLedger) ListBySupplier(ctx context.Context, supplierID string, limit int32) ([]*queries.BookingView, error) {
	rows, err := l.db.Query(ctx, selectBySupplier, supplierID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger records", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger record", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger records", err)
	}
	return views, nil
}

func scanView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		units     []byte
		arrival   *time.Time
		departure *time.Time
		currency  *string
	)
	err := row.Scan(
		&view.ID,
		&view.SupplierID,
		&view.SupplierType,
		&view.Kind,
		&units,
		&arrival,
		&departure,
		&currency,
		&view.Total,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(units, &view.Units); err != nil {
		return nil, err
	}
	view.Arrival = timeToDatePtr(arrival)
	view.Departure = timeToDatePtr(departure)
	if currency != nil {
		view.Currency = *currency
	}
	return &view, nil
}

func datePtrToTime(d *dates.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func timeToDatePtr(t *time.Time) *dates.Date {
	if t == nil {
		return nil
	}
	d := dates.FromTime(*t)
	return &d
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
