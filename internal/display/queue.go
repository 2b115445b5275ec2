package display

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQueueFull is returned by TryPush when the buffer has no room.
var ErrQueueFull = errors.New("display: queue full")

const defaultQueueSize = 256

// Queue is the hand-off between producers and the consumer. Any number of
// goroutines may push; exactly one consumer takes items with Next and
// acknowledges each with Ack before taking the next.
type Queue struct {
	items chan Event

	mu      sync.Mutex
	pending int
	idle    chan struct{}
}

// NewQueue returns a queue buffering up to size items.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{items: make(chan Event, size)}
}

// Push enqueues ev, blocking while the buffer is full.
func (q *Queue) Push(ctx context.Context, ev Event) error {
	q.begin()
	select {
	case q.items <- ev:
		return nil
	case <-ctx.Done():
		q.Ack()
		return ctx.Err()
	}
}

// TryPush enqueues ev without blocking.
func (q *Queue) TryPush(ev Event) error {
	q.begin()
	select {
	case q.items <- ev:
		return nil
	default:
		q.Ack()
		return ErrQueueFull
	}
}

// Next waits up to timeout for an item. It reports false when the timeout
// elapsed and returns the context error once ctx is done. A non-positive
// timeout waits until an item arrives or ctx ends.
func (q *Queue) Next(ctx context.Context, timeout time.Duration) (Event, bool, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, false, err
	}
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case ev := <-q.items:
		return ev, true, nil
	case <-expired:
		return Event{}, false, nil
	case <-ctx.Done():
		return Event{}, false, ctx.Err()
	}
}

// Ack marks one taken item as fully processed.
func (q *Queue) Ack() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == 0 {
		return
	}
	q.pending--
	if q.pending == 0 {
		close(q.idle)
	}
}

// Wait blocks until every pushed item has been acknowledged.
func (q *Queue) Wait(ctx context.Context) error {
	q.mu.Lock()
	if q.pending == 0 {
		q.mu.Unlock()
		return nil
	}
	idle := q.idle
	q.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len reports the number of buffered items.
func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) begin() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == 0 {
		q.idle = make(chan struct{})
	}
	q.pending++
}
