//go:build unit

package cancellation_test

import (
	"testing"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(s string) *dates.Date {
	d := dates.MustParse(s)
	return &d
}

func TestRequiredAmount(t *testing.T) {
	policy := cancellation.Policy{
		Tiers: []cancellation.Tier{
			{From: datePtr("2019-01-16"), To: datePtr("2019-03-14"), Amount: 100},
			{From: datePtr("2019-03-15"), To: datePtr("2019-03-28"), Amount: 250},
		},
		DefaultAmount: 50,
	}

	t.Run("exactly matching tier decides", func(t *testing.T) {
		required, err := policy.RequiredAmount(cancellation.FeeEntry{
			From: dates.MustParse("2019-03-15"), To: dates.MustParse("2019-03-28"), Amount: 250,
		})
		require.NoError(t, err)
		assert.Equal(t, 250.0, required)
	})

	t.Run("partial overlap without exact match fails", func(t *testing.T) {
		_, err := policy.RequiredAmount(cancellation.FeeEntry{
			From: dates.MustParse("2019-03-20"), To: dates.MustParse("2019-03-28"), Amount: 250,
		})
		assert.ErrorIs(t, err, cancellation.ErrNoApplicableTier)
	})

	t.Run("interval outside all tiers falls back to default", func(t *testing.T) {
		required, err := policy.RequiredAmount(cancellation.FeeEntry{
			From: dates.MustParse("2018-12-01"), To: dates.MustParse("2019-01-15"), Amount: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, required)
	})

	t.Run("open-ended tier overlaps everything on its open side", func(t *testing.T) {
		open := cancellation.Policy{
			Tiers:         []cancellation.Tier{{From: datePtr("2019-01-01"), Amount: 80}},
			DefaultAmount: 10,
		}
		_, err := open.RequiredAmount(cancellation.FeeEntry{
			From: dates.MustParse("2019-06-01"), To: dates.MustParse("2019-06-30"), Amount: 80,
		})
		assert.ErrorIs(t, err, cancellation.ErrNoApplicableTier)
	})
}

func TestAdmissible(t *testing.T) {
	policy := cancellation.Policy{
		Tiers: []cancellation.Tier{
			{From: datePtr("2019-03-15"), To: datePtr("2019-03-28"), Amount: 250},
		},
		DefaultAmount: 0,
	}
	entry := func(amount float64) cancellation.FeeEntry {
		return cancellation.FeeEntry{
			From: dates.MustParse("2019-03-15"), To: dates.MustParse("2019-03-28"), Amount: amount,
		}
	}

	assert.True(t, policy.Admissible(entry(250)))
	assert.True(t, policy.Admissible(entry(250-cancellation.Epsilon/2)))
	assert.True(t, policy.Admissible(entry(300)))
	assert.False(t, policy.Admissible(entry(249)))
}
