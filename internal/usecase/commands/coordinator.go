package commands

import (
	"context"
	"sync"

	"booking-admission/internal/usecase/shared"
)

// Snapshot is the contract an inventory document must satisfy to be driven
// through a coordinator cycle: it must know how to deep-copy itself so a
// failed mutation can never leak a half-mutated document into the write.
type Snapshot[S any] interface {
	Clone() (S, error)
}

// InventoryGateway abstracts the remote fetch/write pair for one supplier
// variant.
type InventoryGateway[S Snapshot[S]] interface {
	Fetch(ctx context.Context, supplierID string) (S, error)
	Write(ctx context.Context, supplierID string, snap S) error
}

// Coordinator owns the serialized read-modify-write cycles against remote
// inventory. It guarantees that for any two concurrent ApplyUpdate calls
// against the same supplier, the second operation's fetch observes the state
// left by the first operation's write (or its pre-update state if it failed
// before writing) — never a stale intermediate. Distinct suppliers get
// independent queues and progress in parallel.
type Coordinator[S Snapshot[S]] struct {
	gateway InventoryGateway[S]

	mu     sync.Mutex
	queues map[string]*shared.SerialQueue
}

func NewCoordinator[S Snapshot[S]](gateway InventoryGateway[S]) *Coordinator[S] {
	return &Coordinator[S]{
		gateway: gateway,
		queues:  make(map[string]*shared.SerialQueue),
	}
}

// ApplyUpdate enqueues one fetch→mutate→write cycle for the supplier. The
// snapshot is fetched fresh once the operation's turn arrives, mutated on a
// deep copy, and written back only if the mutation succeeded. Failure at any
// stage rejects this operation alone; the queue moves on regardless.
func (c *Coordinator[S]) ApplyUpdate(ctx context.Context, supplierID string, mutate func(S) error) error {
	return c.queue(supplierID).Run(ctx, func() error {
		snap, err := c.gateway.Fetch(ctx, supplierID)
		if err != nil {
			return err
		}

		work, err := snap.Clone()
		if err != nil {
			return err
		}
		if err := mutate(work); err != nil {
			return err
		}

		return c.gateway.Write(ctx, supplierID, work)
	})
}

func (c *Coordinator[S]) queue(supplierID string) *shared.SerialQueue {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[supplierID]
	if !ok {
		q = shared.NewSerialQueue()
		c.queues[supplierID] = q
	}
	return q
}
