//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"booking-admission/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seatSnapshot is a minimal inventory document for exercising the
// coordinator: a single decrementable seat count.
type seatSnapshot struct {
	Seats int
}

func (s *seatSnapshot) Clone() (*seatSnapshot, error) {
	cp := *s
	return &cp, nil
}

var errSoldOut = errors.New("sold out")

func (s *seatSnapshot) take(n int) error {
	if s.Seats < n {
		return errSoldOut
	}
	s.Seats -= n
	return nil
}

// fakeSeatGateway keeps per-supplier documents in memory and records every
// state a fetch observed and every state a write committed.
type fakeSeatGateway struct {
	mu       sync.Mutex
	state    map[string]int
	fetched  []int
	written  []int
	writeErr error
}

func newFakeSeatGateway(initial map[string]int) *fakeSeatGateway {
	return &fakeSeatGateway{state: initial}
}

func (g *fakeSeatGateway) Fetch(_ context.Context, supplierID string) (*seatSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	seats, ok := g.state[supplierID]
	if !ok {
		return nil, fmt.Errorf("unknown supplier %q", supplierID)
	}
	g.fetched = append(g.fetched, seats)
	return &seatSnapshot{Seats: seats}, nil
}

func (g *fakeSeatGateway) Write(_ context.Context, supplierID string, snap *seatSnapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.writeErr != nil {
		return g.writeErr
	}
	g.state[supplierID] = snap.Seats
	g.written = append(g.written, snap.Seats)
	return nil
}

func TestApplyUpdateNeverOversells(t *testing.T) {
	gw := newFakeSeatGateway(map[string]int{"SUP1": 6})
	coord := commands.NewCoordinator[*seatSnapshot](gw)

	const attempts = 10
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- coord.ApplyUpdate(context.Background(), "SUP1", func(s *seatSnapshot) error {
				return s.take(1)
			})
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, soldOut int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errSoldOut):
			soldOut++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 6, succeeded)
	assert.Equal(t, 4, soldOut)
	assert.Equal(t, 0, gw.state["SUP1"])
}

func TestApplyUpdateEachFetchSeesPredecessorWrite(t *testing.T) {
	gw := newFakeSeatGateway(map[string]int{"SUP1": 4})
	coord := commands.NewCoordinator[*seatSnapshot](gw)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, coord.ApplyUpdate(context.Background(), "SUP1", func(s *seatSnapshot) error {
				return s.take(1)
			}))
		}()
	}
	wg.Wait()

	assert.Equal(t, []int{4, 3, 2, 1}, gw.fetched, "each cycle must observe the previous write")
	assert.Equal(t, []int{3, 2, 1, 0}, gw.written)
}

func TestApplyUpdateFailureIsolation(t *testing.T) {
	gw := newFakeSeatGateway(map[string]int{"SUP1": 10})
	coord := commands.NewCoordinator[*seatSnapshot](gw)

	results := make([]error, 4)
	for i := 0; i < 4; i++ {
		n := 1
		if i == 1 {
			n = 100 // guaranteed to fail
		}
		results[i] = coord.ApplyUpdate(context.Background(), "SUP1", func(s *seatSnapshot) error {
			return s.take(n)
		})
	}

	require.NoError(t, results[0])
	require.ErrorIs(t, results[1], errSoldOut)
	require.NoError(t, results[2])
	require.NoError(t, results[3])
	assert.Equal(t, 7, gw.state["SUP1"], "the failed operation must leave no trace")
}

func TestApplyUpdateFailedMutationIsNotWritten(t *testing.T) {
	gw := newFakeSeatGateway(map[string]int{"SUP1": 2})
	coord := commands.NewCoordinator[*seatSnapshot](gw)

	err := coord.ApplyUpdate(context.Background(), "SUP1", func(s *seatSnapshot) error {
		s.Seats = 0 // mutate before failing
		return errSoldOut
	})
	require.ErrorIs(t, err, errSoldOut)

	assert.Empty(t, gw.written)
	assert.Equal(t, 2, gw.state["SUP1"])
}

func TestApplyUpdatePropagatesGatewayErrors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		gw := newFakeSeatGateway(map[string]int{})
		coord := commands.NewCoordinator[*seatSnapshot](gw)

		err := coord.ApplyUpdate(context.Background(), "NOPE", func(*seatSnapshot) error { return nil })
		assert.Error(t, err)
	})

	t.Run("write failure", func(t *testing.T) {
		gw := newFakeSeatGateway(map[string]int{"SUP1": 5})
		gw.writeErr = errors.New("upstream down")
		coord := commands.NewCoordinator[*seatSnapshot](gw)

		err := coord.ApplyUpdate(context.Background(), "SUP1", func(s *seatSnapshot) error {
			return s.take(1)
		})
		assert.ErrorContains(t, err, "upstream down")
		assert.Equal(t, 5, gw.state["SUP1"])
	})
}

func TestApplyUpdateSuppliersProgressIndependently(t *testing.T) {
	gw := newFakeSeatGateway(map[string]int{"A": 1, "B": 1})
	coord := commands.NewCoordinator[*seatSnapshot](gw)

	blockA := make(chan struct{})
	aStarted := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = coord.ApplyUpdate(context.Background(), "A", func(s *seatSnapshot) error {
			close(aStarted)
			<-blockA
			return s.take(1)
		})
	}()

	<-aStarted

	// B must complete while A's cycle is still in flight.
	require.NoError(t, coord.ApplyUpdate(context.Background(), "B", func(s *seatSnapshot) error {
		return s.take(1)
	}))

	close(blockA)
	wg.Wait()

	assert.Equal(t, 0, gw.state["A"])
	assert.Equal(t, 0, gw.state["B"])
}
