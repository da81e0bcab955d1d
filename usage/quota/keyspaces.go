package quota

import (
	"context"
	"fmt"
	"time"

	"encore.dev/storage/cache"
)

// UsageCluster is the cache cluster backing all usage counters and the
// derived-read caches.
var UsageCluster = cache.NewCluster("usage-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

type rateLimitKey struct {
	Action      string
	UserID      string
	WindowStart string
}

type budgetKey struct {
	UserID string
	Date   string
}

type claimKey struct {
	UserID      string
	SessionType string
	Date        string
}

// Counter keyspaces. Window membership is encoded in the key (window start
// bucket or UTC date), so a new window always starts from a fresh key. The
// keyspace expiry is applied when Increment creates a key, which guarantees
// no counter ever exists without a bounded lifetime; it only needs to outlive
// the widest window each family supports.
var rateLimitCounters = cache.NewIntKeyspace[rateLimitKey](UsageCluster, cache.KeyspaceConfig{
	KeyPattern:    "ratelimit/:Action/:UserID/:WindowStart",
	DefaultExpiry: cache.ExpireIn(2 * widestWindow(DefaultRules)),
})

var budgetCounters = cache.NewIntKeyspace[budgetKey](UsageCluster, cache.KeyspaceConfig{
	KeyPattern:    "budget/:UserID/:Date",
	DefaultExpiry: cache.ExpireIn(48 * time.Hour),
})

var claimCounters = cache.NewIntKeyspace[claimKey](UsageCluster, cache.KeyspaceConfig{
	KeyPattern:    "session_claim/:UserID/:SessionType/:Date",
	DefaultExpiry: cache.ExpireIn(48 * time.Hour),
})

// keyspaceStore routes counter increments to the family's keyspace.
type keyspaceStore struct{}

// NewKeyspaceStore returns the production CounterStore backed by the usage
// cache cluster.
func NewKeyspaceStore() CounterStore {
	return keyspaceStore{}
}

func (keyspaceStore) Incr(ctx context.Context, key CounterKey) (int64, error) {
	switch key.Family {
	case FamilyRateLimit:
		return rateLimitCounters.Increment(ctx, rateLimitKey{
			Action:      key.Scope,
			UserID:      key.UserID,
			WindowStart: key.Bucket,
		}, 1)
	case FamilyBudget:
		return budgetCounters.Increment(ctx, budgetKey{
			UserID: key.UserID,
			Date:   key.Bucket,
		}, 1)
	case FamilyClaim:
		return claimCounters.Increment(ctx, claimKey{
			UserID:      key.UserID,
			SessionType: key.Scope,
			Date:        key.Bucket,
		}, 1)
	}
	return 0, fmt.Errorf("unknown counter family %q", key.Family)
}
