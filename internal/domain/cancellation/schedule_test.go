//go:build unit

package cancellation_test

import (
	"testing"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookedAt = dates.MustParse("2018-12-01")
	arrival  = dates.MustParse("2019-03-28")
)

func wellFormedSchedule() cancellation.FeeSchedule {
	return cancellation.FeeSchedule{
		{From: dates.MustParse("2018-12-01"), To: dates.MustParse("2019-01-15"), Amount: 0},
		{From: dates.MustParse("2019-01-16"), To: dates.MustParse("2019-03-14"), Amount: 100},
		{From: dates.MustParse("2019-03-15"), To: dates.MustParse("2019-03-28"), Amount: 250},
	}
}

func matchingPolicy() cancellation.Policy {
	tier := func(from, to string, amount float64) cancellation.Tier {
		f, t := dates.MustParse(from), dates.MustParse(to)
		return cancellation.Tier{From: &f, To: &t, Amount: amount}
	}
	return cancellation.Policy{
		Tiers: []cancellation.Tier{
			tier("2018-12-01", "2019-01-15", 0),
			tier("2019-01-16", "2019-03-14", 100),
			tier("2019-03-15", "2019-03-28", 250),
		},
	}
}

func TestIllFormedReason(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(s cancellation.FeeSchedule) cancellation.FeeSchedule
		wantReason string
	}{
		{
			name:       "well-formed schedule passes",
			mutate:     func(s cancellation.FeeSchedule) cancellation.FeeSchedule { return s },
			wantReason: "",
		},
		{
			name: "order of intervals does not matter",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				return cancellation.FeeSchedule{s[2], s[0], s[1]}
			},
			wantReason: "",
		},
		{
			name: "empty schedule",
			mutate: func(cancellation.FeeSchedule) cancellation.FeeSchedule {
				return cancellation.FeeSchedule{}
			},
			wantReason: "no cancellation fee intervals",
		},
		{
			name: "interval ends before it starts",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[1].To = dates.MustParse("2019-01-10")
				return s
			},
			wantReason: "ends before it starts",
		},
		{
			name: "first interval starts after the booking date",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[0].From = dates.MustParse("2018-12-05")
				return s
			},
			wantReason: "before the booking date",
		},
		{
			name: "first interval starts before the booking date",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[0].From = dates.MustParse("2018-11-20")
				return s
			},
			wantReason: "starts before the booking date",
		},
		{
			name: "gap between intervals",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[1].From = dates.MustParse("2019-01-20")
				return s
			},
			wantReason: "gap between",
		},
		{
			name: "overlapping intervals",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[1].From = dates.MustParse("2019-01-10")
				return s
			},
			wantReason: "overlap",
		},
		{
			name: "coverage stops before the arrival date",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				return s[:2]
			},
			wantReason: "whole period between",
		},
		{
			name: "coverage extends past the arrival date",
			mutate: func(s cancellation.FeeSchedule) cancellation.FeeSchedule {
				s[2].To = dates.MustParse("2019-04-02")
				return s
			},
			wantReason: "extends past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := tt.mutate(wellFormedSchedule()).IllFormedReason(bookedAt, arrival)
			if tt.wantReason == "" {
				assert.Empty(t, reason)
			} else {
				assert.Contains(t, reason, tt.wantReason)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	policy := matchingPolicy()

	t.Run("admissible schedule passes", func(t *testing.T) {
		require.NoError(t, wellFormedSchedule().Validate(bookedAt, arrival, policy))
	})

	t.Run("ill-formed schedule fails before policy evaluation", func(t *testing.T) {
		err := cancellation.FeeSchedule{}.Validate(bookedAt, arrival, policy)
		require.ErrorIs(t, err, cancellation.ErrIllFormedCancellationFees)
	})

	t.Run("fee below required amount is inadmissible", func(t *testing.T) {
		s := wellFormedSchedule()
		s[2].Amount = 200
		err := s.Validate(bookedAt, arrival, policy)
		require.ErrorIs(t, err, cancellation.ErrInadmissibleCancellationFees)
		assert.Contains(t, err.Error(), "250")
	})

	t.Run("fee within epsilon of required amount passes", func(t *testing.T) {
		s := wellFormedSchedule()
		s[2].Amount = 250 - cancellation.Epsilon/2
		require.NoError(t, s.Validate(bookedAt, arrival, policy))
	})

	t.Run("fee above required amount passes", func(t *testing.T) {
		s := wellFormedSchedule()
		s[2].Amount = 300
		require.NoError(t, s.Validate(bookedAt, arrival, policy))
	})

	t.Run("interval covered only partially by tiers is inadmissible", func(t *testing.T) {
		// Split the last interval so neither half matches a tier exactly.
		s := wellFormedSchedule()
		s[2].To = dates.MustParse("2019-03-20")
		s = append(s, cancellation.FeeEntry{
			From:   dates.MustParse("2019-03-21"),
			To:     dates.MustParse("2019-03-28"),
			Amount: 250,
		})
		err := s.Validate(bookedAt, arrival, policy)
		require.ErrorIs(t, err, cancellation.ErrInadmissibleCancellationFees)
		assert.ErrorIs(t, err, cancellation.ErrNoApplicableTier)
	})
}
