// Package cancellation validates caller-proposed cancellation-fee schedules
// against supplier-declared policy tiers.
package cancellation

import (
	"errors"
	"fmt"
	"sort"

	"booking-admission/internal/pkg/dates"
)

var (
	ErrIllFormedCancellationFees    = errors.New("ill-formed cancellation fees")
	ErrInadmissibleCancellationFees = errors.New("inadmissible cancellation fees")
)

// FeeEntry is one interval of the caller's proposed cancellation-fee schedule.
type FeeEntry struct {
	From   dates.Date `json:"from"`
	To     dates.Date `json:"to"`
	Amount float64    `json:"amount"`
}

func (e FeeEntry) String() string {
	return fmt.Sprintf("[%s..%s] %.2f", e.From, e.To, e.Amount)
}

// FeeSchedule is an ordered sequence of fee intervals asserted to partition
// exactly the period between the booking date and the arrival or departure
// date, with no gaps or overlaps.
type FeeSchedule []FeeEntry

// IllFormedReason checks the structural well-formedness of the schedule
// against the period [bookedAt, endDate]. It returns a descriptive reason for
// the first violation found, or the empty string if the schedule is sound.
func (s FeeSchedule) IllFormedReason(bookedAt, endDate dates.Date) string {
	if len(s) == 0 {
		return "no cancellation fee intervals were given"
	}

	sorted := make(FeeSchedule, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From.Before(sorted[j].From) })

	for _, entry := range sorted {
		if entry.To.Before(entry.From) {
			return fmt.Sprintf("interval %s ends before it starts", entry)
		}
	}

	first := sorted[0]
	if first.From.Before(bookedAt) {
		return fmt.Sprintf("interval %s starts before the booking date %s", first, bookedAt)
	}
	if first.From.After(bookedAt) {
		return fmt.Sprintf("the first interval %s must start on or before the booking date %s", first, bookedAt)
	}

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		expected := prev.To.Next()
		if cur.From.After(expected) {
			return fmt.Sprintf("the fees must cover the whole period between %s and %s: gap between %s and %s", bookedAt, endDate, prev, cur)
		}
		if cur.From.Before(expected) {
			return fmt.Sprintf("intervals %s and %s overlap", prev, cur)
		}
	}

	last := sorted[len(sorted)-1]
	if last.To.Before(endDate) {
		return fmt.Sprintf("the fees must cover the whole period between %s and %s, but coverage ends at %s", bookedAt, endDate, last.To)
	}
	if last.To.After(endDate) {
		return fmt.Sprintf("interval %s extends past the end of the period %s", last, endDate)
	}

	return ""
}

// Validate runs the structural check first and, only if it passes, the
// per-entry admissibility check against the supplier policy. Every entry must
// independently pass; the first failing entry is reported.
func (s FeeSchedule) Validate(bookedAt, endDate dates.Date, policy Policy) error {
	if reason := s.IllFormedReason(bookedAt, endDate); reason != "" {
		return fmt.Errorf("%w: %s", ErrIllFormedCancellationFees, reason)
	}
	for _, entry := range s {
		required, err := policy.RequiredAmount(entry)
		if err != nil {
			return fmt.Errorf("%w: %w for interval %s", ErrInadmissibleCancellationFees, err, entry)
		}
		if entry.Amount < required-Epsilon {
			return fmt.Errorf("%w: interval %s requires a fee of at least %.2f", ErrInadmissibleCancellationFees, entry, required)
		}
	}
	return nil
}
