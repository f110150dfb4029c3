package inventory

import (
	"fmt"

	"booking-admission/internal/domain/cancellation"
)

// BookingClass is the mutable availability record for one class on a flight
// instance.
type BookingClass struct {
	Availability int     `json:"availabilityCount"`
	Fare         float64 `json:"fare"`
}

// AirlineSnapshot is the full remote availability document for one airline
// supplier at a point in time. Same lifecycle as HotelSnapshot.
type AirlineSnapshot struct {
	Currency string                   `json:"currency"`
	Classes  map[string]*BookingClass `json:"classes"`
	Policy   cancellation.Policy      `json:"cancellationPolicy"`
}

// AirlineUpdate is a caller's intent against airline inventory: passenger
// counts per booking class.
type AirlineUpdate struct {
	Classes map[string]int
	Restore bool
}

// CheckAvailability is the soft pre-check: every requested class must exist
// with at least the requested passenger count available.
func (s *AirlineSnapshot) CheckAvailability(upd AirlineUpdate) error {
	for class, pax := range upd.Classes {
		bc, ok := s.Classes[class]
		if !ok {
			return fmt.Errorf("%w: unknown booking class %q", ErrFlightUnavailable, class)
		}
		if bc.Availability < pax {
			return fmt.Errorf("%w: booking class %q has %d seats left, %d requested", ErrFlightUnavailable, class, bc.Availability, pax)
		}
	}
	return nil
}

// ApplyUpdate mutates availability counts by the signed delta. Authoritative
// hard check; runs inside the serialized cycle.
func (s *AirlineSnapshot) ApplyUpdate(upd AirlineUpdate) error {
	for class, pax := range upd.Classes {
		bc, ok := s.Classes[class]
		if !ok {
			return fmt.Errorf("%w: unknown booking class %q", ErrInvalidUpdate, class)
		}
		delta := -pax
		if upd.Restore {
			delta = pax
		}
		if bc.Availability+delta < 0 {
			return fmt.Errorf("%w: booking class %q would drop below zero", ErrInvalidUpdate, class)
		}
		bc.Availability += delta
	}
	return nil
}
