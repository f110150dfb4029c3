package cancellation

import (
	"errors"

	"booking-admission/internal/pkg/dates"
)

// Epsilon is the tolerance applied to fee and price comparisons, absorbing
// floating-point representation drift.
const Epsilon = 1e-4

var ErrNoApplicableTier = errors.New("no applicable policy tier found through exact match")

// Tier is one supplier-declared cancellation policy tier, already normalized
// against the concrete booking timeline by the supplier's pricing data. Tiers
// may overlap, and a missing From or To bound means open-ended on that side.
type Tier struct {
	From     *dates.Date `json:"from,omitempty"`
	To       *dates.Date `json:"to,omitempty"`
	Amount   float64     `json:"amount"`
	Deadline *dates.Date `json:"deadline,omitempty"`
}

// Policy is the supplier's full cancellation policy: the declared tiers plus
// the fallback amount applying to any sub-interval not covered by a tier.
type Policy struct {
	Tiers         []Tier  `json:"tiers"`
	DefaultAmount float64 `json:"defaultAmount"`
}

// RequiredAmount returns the minimum fee the policy mandates for the entry's
// interval.
//
// A tier whose bounds exactly match the interval decides. When no tier matches
// exactly but some tier's span still covers part of the interval,
// admissibility cannot be determined and ErrNoApplicableTier is returned.
// Only an interval lying entirely outside every declared tier's span falls
// back to the default amount.
func (p Policy) RequiredAmount(entry FeeEntry) (float64, error) {
	for _, tier := range p.Tiers {
		if tier.matches(entry.From, entry.To) {
			return tier.Amount, nil
		}
	}
	for _, tier := range p.Tiers {
		if tier.overlaps(entry.From, entry.To) {
			return 0, ErrNoApplicableTier
		}
	}
	return p.DefaultAmount, nil
}

// Admissible reports whether the entry's fee satisfies the policy within
// Epsilon.
func (p Policy) Admissible(entry FeeEntry) bool {
	required, err := p.RequiredAmount(entry)
	if err != nil {
		return false
	}
	return entry.Amount >= required-Epsilon
}

func (t Tier) matches(from, to dates.Date) bool {
	return t.From != nil && t.To != nil && t.From.Equal(from) && t.To.Equal(to)
}

func (t Tier) overlaps(from, to dates.Date) bool {
	if t.From != nil && to.Before(*t.From) {
		return false
	}
	if t.To != nil && from.After(*t.To) {
		return false
	}
	return true
}
