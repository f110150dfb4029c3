package inventory

import (
	"errors"
	"fmt"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/pkg/dates"
)

var (
	ErrRoomUnavailable      = errors.New("room unavailable")
	ErrFlightUnavailable    = errors.New("flight unavailable")
	ErrRestrictionsViolated = errors.New("restrictions violated")
	ErrInvalidUpdate        = errors.New("invalid inventory update")
)

// Restrictions are per-day rules a supplier may attach to a room type.
type Restrictions struct {
	NoArrival   bool `json:"noArrival,omitempty"`
	NoDeparture bool `json:"noDeparture,omitempty"`
}

// DayAvailability is one dated quantity record for a room type.
type DayAvailability struct {
	Date         dates.Date   `json:"date"`
	Quantity     int          `json:"quantity"`
	Restrictions Restrictions `json:"restrictions,omitempty"`
}

// RoomInventory is the availability series for one room type.
type RoomInventory struct {
	Days []DayAvailability `json:"days"`
}

// HotelSnapshot is the full remote availability document for one hotel
// supplier at a point in time. It lives only inside a single coordinator
// cycle: fetched fresh, mutated in memory, written back, discarded.
type HotelSnapshot struct {
	Currency string                   `json:"currency"`
	Rooms    map[string]RoomInventory `json:"rooms"`
	Rates    map[string]float64       `json:"rates"`
	Policy   cancellation.Policy      `json:"cancellationPolicy"`
}

// HotelUpdate is a caller's intent against hotel inventory: which room types,
// how many of each, over which stay. Restore distinguishes cancellation-time
// restoration from booking-time decrement.
type HotelUpdate struct {
	Rooms     map[string]int
	Arrival   dates.Date
	Departure dates.Date
	Restore   bool
}

func (u HotelUpdate) Nights() int {
	return u.Arrival.DaysUntil(u.Departure)
}

// CheckAvailability reports whether the requested room-nights are satisfiable
// against the snapshot. It is the soft pre-check run before the serialized
// cycle; the authoritative decision is ApplyUpdate on a fresh snapshot.
//
// For every date in [Arrival, Departure) and every requested room type, the
// dated record must exist with enough remaining quantity. NoArrival on the
// arrival date and NoDeparture on the departure date fail the check
// independently of quantity.
func (s *HotelSnapshot) CheckAvailability(upd HotelUpdate) error {
	for roomType, count := range upd.Rooms {
		room, ok := s.Rooms[roomType]
		if !ok {
			return fmt.Errorf("%w: unknown room type %q", ErrRoomUnavailable, roomType)
		}

		if day, ok := room.day(upd.Arrival); ok && day.Restrictions.NoArrival {
			return fmt.Errorf("%w: no arrival on %s for room type %q", ErrRestrictionsViolated, upd.Arrival, roomType)
		}
		if day, ok := room.day(upd.Departure); ok && day.Restrictions.NoDeparture {
			return fmt.Errorf("%w: no departure on %s for room type %q", ErrRestrictionsViolated, upd.Departure, roomType)
		}

		err := dates.Range(upd.Arrival, upd.Departure, func(d dates.Date) error {
			day, ok := room.day(d)
			if !ok {
				return fmt.Errorf("%w: room type %q has no availability on %s", ErrRoomUnavailable, roomType, d)
			}
			if day.Quantity < count {
				return fmt.Errorf("%w: room type %q has %d left on %s, %d requested", ErrRoomUnavailable, roomType, day.Quantity, d, count)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdate mutates the snapshot by the signed delta: a decrement per
// requested room-night for a booking, an increment for a restoration. This is
// the authoritative hard check; it runs inside the serialized cycle where the
// snapshot cannot be stale. Not-found and insufficient-quantity conditions
// surface as ErrInvalidUpdate.
func (s *HotelSnapshot) ApplyUpdate(upd HotelUpdate) error {
	delta := map[string]int{}
	for roomType, count := range upd.Rooms {
		if upd.Restore {
			delta[roomType] = count
		} else {
			delta[roomType] = -count
		}
	}

	for roomType, d := range delta {
		room, ok := s.Rooms[roomType]
		if !ok {
			return fmt.Errorf("%w: unknown room type %q", ErrInvalidUpdate, roomType)
		}
		err := dates.Range(upd.Arrival, upd.Departure, func(day dates.Date) error {
			idx, ok := room.dayIndex(day)
			if !ok {
				return fmt.Errorf("%w: room type %q has no availability record on %s", ErrInvalidUpdate, roomType, day)
			}
			if room.Days[idx].Quantity+d < 0 {
				return fmt.Errorf("%w: room type %q would drop below zero on %s", ErrInvalidUpdate, roomType, day)
			}
			room.Days[idx].Quantity += d
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r RoomInventory) day(d dates.Date) (DayAvailability, bool) {
	idx, ok := r.dayIndex(d)
	if !ok {
		return DayAvailability{}, false
	}
	return r.Days[idx], true
}

func (r RoomInventory) dayIndex(d dates.Date) (int, bool) {
	for i := range r.Days {
		if r.Days[i].Date == d {
			return i, true
		}
	}
	return 0, false
}
