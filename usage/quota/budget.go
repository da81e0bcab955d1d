package quota

import (
	"context"

	"encore.dev/rlog"
)

// DefaultDailyBudget is the global per-user daily ceiling on generation
// calls. It applies to every tier, including unlimited: it bounds cost, not
// product entitlement.
const DefaultDailyBudget = 50

// BudgetDecision is the outcome of one budget consume. Count is the
// post-increment value, so a denied call reports limit+1, not limit: the
// increment that crosses the cap is counted rather than rejected up front,
// because decline-before-increment would need a read-then-act pair.
type BudgetDecision struct {
	Allowed           bool
	Budget            int64
	Count             int64
	RetryAfterSeconds int64
}

// Budget is the hard daily cap on expensive generation work.
type Budget struct {
	counter *Counter
	limit   int64
}

func NewBudget(counter *Counter, limit int64) *Budget {
	return &Budget{counter: counter, limit: limit}
}

// Consume spends one unit of the user's daily generation budget, failing
// closed if the counter store is unreachable.
func (b *Budget) Consume(ctx context.Context, userID string) BudgetDecision {
	count, ttl, err := b.counter.BumpDaily(ctx, FamilyBudget, "", userID)
	if err != nil {
		rlog.Error("budget store unavailable, failing closed",
			"user_id", userID, "error", err)
		return BudgetDecision{
			Allowed:           false,
			Budget:            b.limit,
			RetryAfterSeconds: StoreDownRetryAfterSeconds,
		}
	}

	if count > b.limit {
		return BudgetDecision{
			Allowed:           false,
			Budget:            b.limit,
			Count:             count,
			RetryAfterSeconds: int64(ttl.Seconds()),
		}
	}

	return BudgetDecision{Allowed: true, Budget: b.limit, Count: count}
}
