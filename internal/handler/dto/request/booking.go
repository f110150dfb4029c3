package request

import (
	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/domain/pricing"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/usecase/commands"
)

// ChecksOverride flips individual admission dimensions away from the
// configured defaults for one request. Absent fields keep the default.
type ChecksOverride struct {
	Availability     *bool `json:"availability,omitempty"`
	CancellationFees *bool `json:"cancellationFees,omitempty"`
	TotalPrice       *bool `json:"totalPrice,omitempty"`
}

func (o *ChecksOverride) Resolve(defaults config.ChecksConfig) commands.CheckOptions {
	opts := commands.CheckOptions{
		Availability:     defaults.Availability,
		CancellationFees: defaults.CancellationFees,
		TotalPrice:       defaults.TotalPrice,
	}
	if o == nil {
		return opts
	}
	if o.Availability != nil {
		opts.Availability = *o.Availability
	}
	if o.CancellationFees != nil {
		opts.CancellationFees = *o.CancellationFees
	}
	if o.TotalPrice != nil {
		opts.TotalPrice = *o.TotalPrice
	}
	return opts
}

type HotelBookingRequest struct {
	SupplierID string                   `json:"supplierId" binding:"required"`
	Rooms      map[string]int           `json:"rooms" binding:"required"`
	Arrival    dates.Date               `json:"arrival" binding:"required"`
	Departure  dates.Date               `json:"departure" binding:"required"`
	BookedAt   *dates.Date              `json:"bookedAt,omitempty"`
	Fees       cancellation.FeeSchedule `json:"cancellationFees,omitempty"`
	Pricing    pricing.Proposal         `json:"pricing"`
	Checks     *ChecksOverride          `json:"checks,omitempty"`
}

// ToDomain builds the admission request, defaulting the booking date to today
// when the caller omitted it.
func (r HotelBookingRequest) ToDomain(today dates.Date) commands.HotelAdmissionRequest {
	bookedAt := today
	if r.BookedAt != nil {
		bookedAt = *r.BookedAt
	}
	return commands.HotelAdmissionRequest{
		Booking: inventory.HotelUpdate{
			Rooms:     r.Rooms,
			Arrival:   r.Arrival,
			Departure: r.Departure,
		},
		Fees:     r.Fees,
		Pricing:  r.Pricing,
		BookedAt: bookedAt,
	}
}

type AirlineBookingRequest struct {
	SupplierID string                   `json:"supplierId" binding:"required"`
	Classes    map[string]int           `json:"classes" binding:"required"`
	Departure  dates.Date               `json:"departure" binding:"required"`
	BookedAt   *dates.Date              `json:"bookedAt,omitempty"`
	Fees       cancellation.FeeSchedule `json:"cancellationFees,omitempty"`
	Pricing    pricing.Proposal         `json:"pricing"`
	Checks     *ChecksOverride          `json:"checks,omitempty"`
}

func (r AirlineBookingRequest) ToDomain(today dates.Date) commands.AirlineAdmissionRequest {
	bookedAt := today
	if r.BookedAt != nil {
		bookedAt = *r.BookedAt
	}
	return commands.AirlineAdmissionRequest{
		Booking: inventory.AirlineUpdate{
			Classes: r.Classes,
		},
		Departure: r.Departure,
		Fees:      r.Fees,
		Pricing:   r.Pricing,
		BookedAt:  bookedAt,
	}
}

type HotelCancellationRequest struct {
	SupplierID string         `json:"supplierId" binding:"required"`
	Rooms      map[string]int `json:"rooms" binding:"required"`
	Arrival    dates.Date     `json:"arrival" binding:"required"`
	Departure  dates.Date     `json:"departure" binding:"required"`
}

func (r HotelCancellationRequest) ToDomain() inventory.HotelUpdate {
	return inventory.HotelUpdate{
		Rooms:     r.Rooms,
		Arrival:   r.Arrival,
		Departure: r.Departure,
	}
}

type AirlineCancellationRequest struct {
	SupplierID string         `json:"supplierId" binding:"required"`
	Classes    map[string]int `json:"classes" binding:"required"`
}

func (r AirlineCancellationRequest) ToDomain() inventory.AirlineUpdate {
	return inventory.AirlineUpdate{
		Classes: r.Classes,
	}
}
