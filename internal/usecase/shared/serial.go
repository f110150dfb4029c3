package shared

import (
	"context"
	"sync"
)

// SerialQueue runs submitted operations strictly one at a time, in arrival
// order. Each Run call chains itself onto the current tail of the queue, so
// operation N+1 cannot start before operation N has returned — success or
// failure. An operation's failure is reported to its caller only and never
// affects queued siblings.
type SerialQueue struct {
	mu   sync.Mutex
	tail chan struct{}
}

func NewSerialQueue() *SerialQueue {
	return &SerialQueue{}
}

// Run blocks until every previously enqueued operation has finished, then
// executes op. A queued operation always waits out its predecessor, even when
// its own context has already been canceled; it then fails fast without
// running op, keeping the chain intact for successors.
func (q *SerialQueue) Run(ctx context.Context, op func() error) error {
	q.mu.Lock()
	prev := q.tail
	done := make(chan struct{})
	q.tail = done
	q.mu.Unlock()
	defer close(done)

	if prev != nil {
		<-prev
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return op()
}
