package quota

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// Rule is the fixed-window policy for one action.
type Rule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRules maps action names to their policy. Actions without a rule are
// not limited: unknown actions fail open, which is the deliberate default for
// endpoints that have not been brought under a quota yet.
var DefaultRules = map[string]Rule{
	"evaluate":        {Limit: 10, Window: time.Hour},
	"start_session":   {Limit: 30, Window: time.Hour},
	"complete_lesson": {Limit: 60, Window: time.Hour},
	"refresh_streaks": {Limit: 6, Window: time.Hour},
}

// StoreDownRetryAfterSeconds is the retry hint returned when the counter
// store is unreachable and a quota check fails closed.
const StoreDownRetryAfterSeconds = 30

// widestWindow returns the largest window across rules. The rate-limit
// keyspace expiry is derived from it, so a counter key always outlives the
// window it counts; a rule wider than the key lifetime would reset mid-window.
func widestWindow(rules map[string]Rule) time.Duration {
	widest := time.Hour
	for _, r := range rules {
		if r.Window > widest {
			widest = r.Window
		}
	}
	return widest
}

// Decision is the outcome of one limiter check. Count is the post-increment
// value; it stays zero on the fail-closed store-down path, where the true
// count is unknown.
type Decision struct {
	Allowed           bool
	Limit             int64
	Count             int64
	Remaining         int64
	RetryAfterSeconds int64
}

// Limiter enforces per-user, per-action fixed-window quotas.
type Limiter struct {
	counter *Counter
	rules   map[string]Rule
}

func NewLimiter(counter *Counter, rules map[string]Rule) *Limiter {
	return &Limiter{counter: counter, rules: rules}
}

// Consume spends one unit of the user's quota for action. Store failures are
// absorbed into a fail-closed denial: the actions this limiter protects are
// expensive and must not run unbounded during an outage.
func (l *Limiter) Consume(ctx context.Context, userID, action string) Decision {
	rule, ok := l.rules[action]
	if !ok {
		return Decision{Allowed: true}
	}

	count, ttl, err := l.counter.BumpWindow(ctx, action, userID, rule.Window)
	if err != nil {
		rlog.Error("rate limit store unavailable, failing closed",
			"action", action, "user_id", userID, "error", err)
		return Decision{
			Allowed:           false,
			Limit:             rule.Limit,
			RetryAfterSeconds: StoreDownRetryAfterSeconds,
		}
	}

	if count > rule.Limit {
		retryAfter := int64(ttl.Seconds())
		if retryAfter <= 0 {
			retryAfter = int64(rule.Window.Seconds())
		}
		return Decision{
			Allowed:           false,
			Limit:             rule.Limit,
			Count:             count,
			Remaining:         0,
			RetryAfterSeconds: retryAfter,
		}
	}

	return Decision{
		Allowed:   true,
		Limit:     rule.Limit,
		Count:     count,
		Remaining: rule.Limit - count,
	}
}
