package quota

import (
	"context"

	"encore.dev/rlog"

	"encore.app/usage/model"
)

// Unlimited marks a (session type, tier) pair that carries no daily cap.
const Unlimited int64 = -1

// DefaultSessionLimits maps session type and tier to the daily cap. Tier
// resolution is the subscription service's job; claims only consume the
// resolved tier.
var DefaultSessionLimits = map[model.SessionType]map[model.Tier]int64{
	model.SessionTypeStory: {
		model.TierFree:      3,
		model.TierPlus:      20,
		model.TierUnlimited: Unlimited,
	},
	model.SessionTypeVocabulary: {
		model.TierFree:      5,
		model.TierPlus:      30,
		model.TierUnlimited: Unlimited,
	},
	model.SessionTypeListening: {
		model.TierFree:      2,
		model.TierPlus:      15,
		model.TierUnlimited: Unlimited,
	},
}

// ClaimDecision is the outcome of one session claim. CurrentCount is the
// post-increment value (same boundary policy as BudgetDecision).
type ClaimDecision struct {
	Allowed           bool
	Limit             int64
	CurrentCount      int64
	RetryAfterSeconds int64
}

// Claims gates session starts on per-type daily counters. Checking quota and
// recording usage is one atomic increment; two sequential calls would let
// racing requests each observe headroom before either one counts.
type Claims struct {
	counter *Counter
	limits  map[model.SessionType]map[model.Tier]int64
}

func NewClaims(counter *Counter, limits map[model.SessionType]map[model.Tier]int64) *Claims {
	return &Claims{counter: counter, limits: limits}
}

// Claim atomically takes one unit of today's quota for the session type,
// failing closed if the counter store is unreachable.
func (c *Claims) Claim(ctx context.Context, userID string, sessionType model.SessionType, tier model.Tier) ClaimDecision {
	limit := c.limitFor(sessionType, tier)

	count, ttl, err := c.counter.BumpDaily(ctx, FamilyClaim, string(sessionType), userID)
	if err != nil {
		rlog.Error("session claim store unavailable, failing closed",
			"user_id", userID, "session_type", sessionType, "error", err)
		return ClaimDecision{
			Allowed:           false,
			Limit:             limit,
			RetryAfterSeconds: StoreDownRetryAfterSeconds,
		}
	}

	if limit != Unlimited && count > limit {
		return ClaimDecision{
			Allowed:           false,
			Limit:             limit,
			CurrentCount:      count,
			RetryAfterSeconds: int64(ttl.Seconds()),
		}
	}

	return ClaimDecision{Allowed: true, Limit: limit, CurrentCount: count}
}

func (c *Claims) limitFor(sessionType model.SessionType, tier model.Tier) int64 {
	tiers, ok := c.limits[sessionType]
	if !ok {
		return Unlimited
	}
	limit, ok := tiers[tier]
	if !ok {
		// Unknown tiers get the free allowance rather than a free pass.
		return tiers[model.TierFree]
	}
	return limit
}
