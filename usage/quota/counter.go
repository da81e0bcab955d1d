package quota

import (
	"context"
	"strconv"
	"time"
)

// Family selects the counter namespace.
type Family string

const (
	FamilyRateLimit Family = "ratelimit"
	FamilyBudget    Family = "budget"
	FamilyClaim     Family = "session_claim"
)

// CounterKey addresses one shared counter.
type CounterKey struct {
	Family Family
	Scope  string // action name or session type; empty for the budget family
	UserID string
	Bucket string // window start (unix seconds) or UTC date
}

// CounterStore is the single mutation path for shared counters: an atomic
// increment that creates the key with a bounded expiry when absent, in one
// round trip. Composed read-then-write sequences against counters are
// disallowed; they reintroduce the check-then-act race this primitive closes.
type CounterStore interface {
	Incr(ctx context.Context, key CounterKey) (int64, error)
}

// Counter is the fixed-window atomic counter primitive shared by the rate
// limiter, the daily budget, and session claims.
type Counter struct {
	store CounterStore
	now   func() time.Time
}

func NewCounter(store CounterStore) *Counter {
	return &Counter{store: store, now: time.Now}
}

// BumpWindow increments the rate-limit counter for the window containing now
// and returns the post-increment count and the time remaining until the
// window resets.
func (c *Counter) BumpWindow(ctx context.Context, action, userID string, window time.Duration) (int64, time.Duration, error) {
	now := c.now().UTC()
	start := now.Truncate(window)
	remaining := start.Add(window).Sub(now)

	count, err := c.store.Incr(ctx, CounterKey{
		Family: FamilyRateLimit,
		Scope:  action,
		UserID: userID,
		Bucket: strconv.FormatInt(start.Unix(), 10),
	})
	return count, remaining, err
}

// BumpDaily increments a UTC-date-bucketed counter and returns the
// post-increment count and the time remaining until the next UTC midnight.
func (c *Counter) BumpDaily(ctx context.Context, family Family, scope, userID string) (int64, time.Duration, error) {
	now := c.now().UTC()
	midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)

	count, err := c.store.Incr(ctx, CounterKey{
		Family: family,
		Scope:  scope,
		UserID: userID,
		Bucket: now.Format(time.DateOnly),
	})
	return count, midnight.Sub(now), err
}
