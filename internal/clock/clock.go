// Package clock holds waiting helpers shared by long-running loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d or until ctx is done, whichever comes first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff yields exponentially growing delays capped at Max.
// The zero value starts at one second and caps at one minute.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// Next returns the delay to wait before the next attempt.
func (b *Backoff) Next() time.Duration {
	initial, limit := b.Initial, b.Max
	if initial <= 0 {
		initial = time.Second
	}
	if limit <= 0 {
		limit = time.Minute
	}
	if b.next <= 0 {
		b.next = initial
	}

	current := b.next
	if current > limit {
		current = limit
	}
	b.next = min(current*2, limit)
	return current
}

// Reset restarts the sequence from Initial.
func (b *Backoff) Reset() {
	b.next = 0
}
