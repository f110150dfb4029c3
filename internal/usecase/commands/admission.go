package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/domain/pricing"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDuplicateBooking       = errs.New("duplicate booking request with different parameters")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrLedgerOperationFailed  = errs.New("ledger operation failed")
)

// CheckOptions toggles the three admission dimensions independently. All
// disabled means the admissibility call is a no-op success.
type CheckOptions struct {
	Availability     bool
	CancellationFees bool
	TotalPrice       bool
}

func (o CheckOptions) none() bool {
	return !o.Availability && !o.CancellationFees && !o.TotalPrice
}

// BookingResult reports the ledger record created for an admitted update, or
// the replayed record when the idempotency key was already completed.
type BookingResult struct {
	BookingID uuid.UUID
	Replayed  bool
}

// HotelAdmissionRequest carries everything needed to judge one proposed hotel
// booking: the inventory intent, the proposed cancellation-fee schedule, the
// declared price and the booking date. The fee schedule must cover the period
// from the booking date to the arrival date.
type HotelAdmissionRequest struct {
	Booking  inventory.HotelUpdate
	Fees     cancellation.FeeSchedule
	Pricing  pricing.Proposal
	BookedAt dates.Date
}

// AirlineAdmissionRequest is the airline counterpart. Departure is the flight
// date closing the cancellation-fee period.
type AirlineAdmissionRequest struct {
	Booking   inventory.AirlineUpdate
	Departure dates.Date
	Fees      cancellation.FeeSchedule
	Pricing   pricing.Proposal
	BookedAt  dates.Date
}

type HotelAdmission interface {
	Check(ctx context.Context, supplierID string, req HotelAdmissionRequest, opts CheckOptions) error
	Book(ctx context.Context, supplierID string, req HotelAdmissionRequest, opts CheckOptions, idempotencyKey uuid.UUID) (*BookingResult, error)
	Cancel(ctx context.Context, supplierID string, booking inventory.HotelUpdate) (*BookingResult, error)
}

type AirlineAdmission interface {
	Check(ctx context.Context, supplierID string, req AirlineAdmissionRequest, opts CheckOptions) error
	Book(ctx context.Context, supplierID string, req AirlineAdmissionRequest, opts CheckOptions, idempotencyKey uuid.UUID) (*BookingResult, error)
	Cancel(ctx context.Context, supplierID string, booking inventory.AirlineUpdate) (*BookingResult, error)
}

type hotelAdmissionImpl struct {
	gateway     InventoryGateway[*inventory.HotelSnapshot]
	coordinator *Coordinator[*inventory.HotelSnapshot]
	ledger      BookingLedger
	idempotency IdempotencyStore
}

func NewHotelAdmission(
	gateway InventoryGateway[*inventory.HotelSnapshot],
	coordinator *Coordinator[*inventory.HotelSnapshot],
	ledger BookingLedger,
	idempotency IdempotencyStore,
) HotelAdmission {
	return &hotelAdmissionImpl{
		gateway:     gateway,
		coordinator: coordinator,
		ledger:      ledger,
		idempotency: idempotency,
	}
}

// Check runs the enabled admission dimensions against a freshly fetched
// supplier document. Availability here is the fail-fast soft check; the
// authoritative decision happens inside the serialized cycle on Book.
func (u *hotelAdmissionImpl) Check(ctx context.Context, supplierID string, req HotelAdmissionRequest, opts CheckOptions) error {
	if opts.none() {
		return nil
	}

	snap, err := u.gateway.Fetch(ctx, supplierID)
	if err != nil {
		return err
	}

	if opts.Availability {
		if err := snap.CheckAvailability(req.Booking); err != nil {
			return err
		}
	}
	if opts.CancellationFees {
		if err := req.Fees.Validate(req.BookedAt, req.Booking.Arrival, snap.Policy); err != nil {
			return err
		}
	}
	if opts.TotalPrice {
		minimum, err := pricing.HotelMinimum(snap.Rates, req.Booking.Rooms, req.Booking.Nights())
		if err != nil {
			return err
		}
		if err := pricing.CheckTotal(snap.Currency, minimum, req.Pricing); err != nil {
			return err
		}
	}
	return nil
}

func (u *hotelAdmissionImpl) Book(ctx context.Context, supplierID string, req HotelAdmissionRequest, opts CheckOptions, idempotencyKey uuid.UUID) (*BookingResult, error) {
	replayed, err := claimIdempotencyKey(ctx, u.idempotency, idempotencyKey, requestHash(req))
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	if err := u.Check(ctx, supplierID, req, opts); err != nil {
		return nil, err
	}

	upd := req.Booking
	upd.Restore = false
	if err := u.coordinator.ApplyUpdate(ctx, supplierID, func(snap *inventory.HotelSnapshot) error {
		return snap.ApplyUpdate(upd)
	}); err != nil {
		return nil, err
	}

	total := req.Pricing.Total
	bookingID, err := u.ledger.Record(ctx, LedgerEntry{
		SupplierID:   supplierID,
		SupplierType: SupplierTypeHotel,
		Kind:         LedgerKindBooking,
		Units:        req.Booking.Rooms,
		Arrival:      &req.Booking.Arrival,
		Departure:    &req.Booking.Departure,
		Currency:     req.Pricing.Currency,
		Total:        &total,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerOperationFailed)
	}

	if err := u.idempotency.Complete(ctx, idempotencyKey, bookingID); err != nil {
		// The inventory change is already committed; the stale key only costs
		// a duplicate-detection miss on replay.
		slog.Warn("failed to complete idempotency key", "key", idempotencyKey, "error", err)
	}

	return &BookingResult{BookingID: bookingID}, nil
}

func (u *hotelAdmissionImpl) Cancel(ctx context.Context, supplierID string, booking inventory.HotelUpdate) (*BookingResult, error) {
	upd := booking
	upd.Restore = true
	if err := u.coordinator.ApplyUpdate(ctx, supplierID, func(snap *inventory.HotelSnapshot) error {
		return snap.ApplyUpdate(upd)
	}); err != nil {
		return nil, err
	}

	recordID, err := u.ledger.Record(ctx, LedgerEntry{
		SupplierID:   supplierID,
		SupplierType: SupplierTypeHotel,
		Kind:         LedgerKindCancellation,
		Units:        booking.Rooms,
		Arrival:      &booking.Arrival,
		Departure:    &booking.Departure,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerOperationFailed)
	}
	return &BookingResult{BookingID: recordID}, nil
}

type airlineAdmissionImpl struct {
	gateway     InventoryGateway[*inventory.AirlineSnapshot]
	coordinator *Coordinator[*inventory.AirlineSnapshot]
	ledger      BookingLedger
	idempotency IdempotencyStore
}

func NewAirlineAdmission(
	gateway InventoryGateway[*inventory.AirlineSnapshot],
	coordinator *Coordinator[*inventory.AirlineSnapshot],
	ledger BookingLedger,
	idempotency IdempotencyStore,
) AirlineAdmission {
	return &airlineAdmissionImpl{
		gateway:     gateway,
		coordinator: coordinator,
		ledger:      ledger,
		idempotency: idempotency,
	}
}

func (u *airlineAdmissionImpl) Check(ctx context.Context, supplierID string, req AirlineAdmissionRequest, opts CheckOptions) error {
	if opts.none() {
		return nil
	}

	snap, err := u.gateway.Fetch(ctx, supplierID)
	if err != nil {
		return err
	}

	if opts.Availability {
		if err := snap.CheckAvailability(req.Booking); err != nil {
			return err
		}
	}
	if opts.CancellationFees {
		if err := req.Fees.Validate(req.BookedAt, req.Departure, snap.Policy); err != nil {
			return err
		}
	}
	if opts.TotalPrice {
		fares := make(map[string]float64, len(snap.Classes))
		for class, bc := range snap.Classes {
			fares[class] = bc.Fare
		}
		minimum, err := pricing.AirlineMinimum(fares, req.Booking.Classes)
		if err != nil {
			return err
		}
		if err := pricing.CheckTotal(snap.Currency, minimum, req.Pricing); err != nil {
			return err
		}
	}
	return nil
}

func (u *airlineAdmissionImpl) Book(ctx context.Context, supplierID string, req AirlineAdmissionRequest, opts CheckOptions, idempotencyKey uuid.UUID) (*BookingResult, error) {
	replayed, err := claimIdempotencyKey(ctx, u.idempotency, idempotencyKey, requestHash(req))
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	if err := u.Check(ctx, supplierID, req, opts); err != nil {
		return nil, err
	}

	upd := req.Booking
	upd.Restore = false
	if err := u.coordinator.ApplyUpdate(ctx, supplierID, func(snap *inventory.AirlineSnapshot) error {
		return snap.ApplyUpdate(upd)
	}); err != nil {
		return nil, err
	}

	total := req.Pricing.Total
	bookingID, err := u.ledger.Record(ctx, LedgerEntry{
		SupplierID:   supplierID,
		SupplierType: SupplierTypeAirline,
		Kind:         LedgerKindBooking,
		Units:        req.Booking.Classes,
		Departure:    &req.Departure,
		Currency:     req.Pricing.Currency,
		Total:        &total,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerOperationFailed)
	}

	if err := u.idempotency.Complete(ctx, idempotencyKey, bookingID); err != nil {
		slog.Warn("failed to complete idempotency key", "key", idempotencyKey, "error", err)
	}

	return &BookingResult{BookingID: bookingID}, nil
}

func (u *airlineAdmissionImpl) Cancel(ctx context.Context, supplierID string, booking inventory.AirlineUpdate) (*BookingResult, error) {
	upd := booking
	upd.Restore = true
	if err := u.coordinator.ApplyUpdate(ctx, supplierID, func(snap *inventory.AirlineSnapshot) error {
		return snap.ApplyUpdate(upd)
	}); err != nil {
		return nil, err
	}

	recordID, err := u.ledger.Record(ctx, LedgerEntry{
		SupplierID:   supplierID,
		SupplierType: SupplierTypeAirline,
		Kind:         LedgerKindCancellation,
		Units:        booking.Classes,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerOperationFailed)
	}
	return &BookingResult{BookingID: recordID}, nil
}

// claimIdempotencyKey claims the key for this request, replaying the stored
// result when a completed submission with the same payload already exists.
func claimIdempotencyKey(ctx context.Context, store IdempotencyStore, key uuid.UUID, hash string) (*BookingResult, error) {
	state, err := store.Begin(ctx, key, hash)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if state == nil {
		return nil, nil
	}

	if state.RequestHash != hash {
		return nil, ErrDuplicateBooking
	}
	switch state.Status {
	case IdempotencyCompleted:
		if state.BookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		return &BookingResult{BookingID: *state.BookingID, Replayed: true}, nil
	case IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func requestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
