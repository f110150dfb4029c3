// Package pricing recomputes the minimum admissible charge for a booking from
// supplier rate data and validates the caller's declared total against it.
package pricing

import (
	"errors"
	"fmt"

	"booking-admission/internal/pkg/dates"
)

// epsilon tolerates floating-point drift on the total comparison. The
// component subtotal checks are exact on purpose.
const epsilon = 1e-4

var ErrInvalidPrice = errors.New("invalid price")

// GuestCharge is one guest's share of a daily subtotal.
type GuestCharge struct {
	ResultingPrice float64 `json:"resultingPrice"`
}

// DailyCharge breaks one day of the stay into a subtotal and its guest-level
// parts.
type DailyCharge struct {
	Date     dates.Date    `json:"date"`
	Subtotal float64       `json:"subtotal"`
	Guests   []GuestCharge `json:"guests,omitempty"`
}

// Components optionally breaks a proposal's total into per-date subtotals.
type Components struct {
	Stay []DailyCharge `json:"stay"`
}

// Proposal is the caller's declared charge for the booking.
type Proposal struct {
	Currency   string      `json:"currency"`
	Total      float64     `json:"total"`
	Components *Components `json:"components,omitempty"`
}

// HotelMinimum computes the minimum admissible charge for a hotel stay: the
// supplier's nightly rate per booked room type, over the number of nights.
func HotelMinimum(rates map[string]float64, rooms map[string]int, nights int) (float64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("%w: stay has no nights", ErrInvalidPrice)
	}
	var total float64
	for roomType, count := range rooms {
		rate, ok := rates[roomType]
		if !ok {
			return 0, fmt.Errorf("%w: no rate declared for room type %q", ErrInvalidPrice, roomType)
		}
		total += rate * float64(count) * float64(nights)
	}
	return total, nil
}

// AirlineMinimum computes the minimum admissible charge for a flight booking:
// the supplier's fare per booking class, per passenger.
func AirlineMinimum(fares map[string]float64, passengers map[string]int) (float64, error) {
	var total float64
	for class, pax := range passengers {
		fare, ok := fares[class]
		if !ok {
			return 0, fmt.Errorf("%w: no fare declared for booking class %q", ErrInvalidPrice, class)
		}
		total += fare * float64(pax)
	}
	return total, nil
}

// CheckTotal validates the proposal against the computed minimum in the
// supplier's currency. The total comparison tolerates epsilon; when components
// are supplied their sums must match exactly.
func CheckTotal(supplierCurrency string, minimum float64, p Proposal) error {
	if p.Currency != supplierCurrency {
		return fmt.Errorf("%w: proposal currency %q does not match supplier currency %q", ErrInvalidPrice, p.Currency, supplierCurrency)
	}
	if p.Total < minimum-epsilon {
		return fmt.Errorf("%w: declared total %.4f is below the minimum charge %.4f", ErrInvalidPrice, p.Total, minimum)
	}
	if p.Components != nil {
		if err := p.Components.checkSums(p.Total); err != nil {
			return err
		}
	}
	return nil
}

func (c *Components) checkSums(total float64) error {
	var staySum float64
	for _, day := range c.Stay {
		if len(day.Guests) > 0 {
			var guestSum float64
			for _, g := range day.Guests {
				guestSum += g.ResultingPrice
			}
			if guestSum != day.Subtotal {
				return fmt.Errorf("%w: guest prices on %s sum to %.4f, subtotal is %.4f", ErrInvalidPrice, day.Date, guestSum, day.Subtotal)
			}
		}
		staySum += day.Subtotal
	}
	if staySum != total {
		return fmt.Errorf("%w: stay subtotals sum to %.4f, declared total is %.4f", ErrInvalidPrice, staySum, total)
	}
	return nil
}
