// Package limiter bounds the number of simultaneous outbound metadata
// calls process-wide, so a large watchlist fanning out does not hammer the
// upstream API past its rate limits.
package limiter

import "context"

// DefaultSlots matches the upstream request budget we hold ourselves to.
const DefaultSlots = 15

// Limiter is a counting semaphore. Waiters blocked on a full semaphore are
// admitted in submission order as slots free up.
type Limiter struct {
	slots chan struct{}
}

// New creates a limiter with the given number of slots.
func New(slots int) *Limiter {
	if slots <= 0 {
		slots = DefaultSlots
	}
	return &Limiter{slots: make(chan struct{}, slots)}
}

// Do runs fn once a slot is free and releases the slot when fn returns,
// success or failure. Waiting is abandoned if ctx is done first.
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	select {
	case l.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.slots }()
	return fn()
}

// InFlight returns the number of currently held slots.
func (l *Limiter) InFlight() int {
	return len(l.slots)
}
