package session

import (
	"context"

	"encore.dev/rlog"

	"encore.app/usage/model"
	"encore.app/usage/providers"
	"encore.app/usage/quota"
)

type Business interface {
	StartSession(ctx context.Context, userID string, sessionType model.SessionType) (quota.ClaimDecision, model.Tier, error)
}

type business struct {
	tiers  providers.TierResolver
	claims *quota.Claims
}

func NewSessionBusiness(tiers providers.TierResolver, claims *quota.Claims) Business {
	return &business{
		tiers:  tiers,
		claims: claims,
	}
}

// StartSession claims one unit of the user's daily quota for the session
// type. The claim is a single atomic check-and-increment; a denied decision
// is a normal outcome, not an error. If the tier lookup fails the user is
// treated as free tier, the most restrictive allowance.
func (b *business) StartSession(ctx context.Context, userID string, sessionType model.SessionType) (quota.ClaimDecision, model.Tier, error) {
	tier, err := b.tiers.Resolve(ctx, userID)
	if err != nil {
		rlog.Warn("tier lookup failed, assuming free tier", "user_id", userID, "error", err)
		tier = model.TierFree
	}

	decision := b.claims.Claim(ctx, userID, sessionType, tier)
	return decision, tier, nil
}
