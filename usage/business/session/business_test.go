package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/usage/model"
	"encore.app/usage/quota"
)

type stubTierResolver struct {
	tier model.Tier
	err  error
}

func (s stubTierResolver) Resolve(ctx context.Context, userID string) (model.Tier, error) {
	return s.tier, s.err
}

// fakeCounterStore gives claims real increment semantics in memory.
type fakeCounterStore struct {
	mu     sync.Mutex
	counts map[quota.CounterKey]int64
	err    error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[quota.CounterKey]int64)}
}

func (f *fakeCounterStore) Incr(ctx context.Context, key quota.CounterKey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func newTestBusiness(tiers stubTierResolver, store quota.CounterStore) Business {
	claims := quota.NewClaims(quota.NewCounter(store), quota.DefaultSessionLimits)
	return NewSessionBusiness(tiers, claims)
}

func TestStartSession_ClaimsAgainstResolvedTier(t *testing.T) {
	b := newTestBusiness(stubTierResolver{tier: model.TierPlus}, newFakeCounterStore())

	decision, tier, err := b.StartSession(context.Background(), "u1", model.SessionTypeStory)
	require.NoError(t, err)
	assert.Equal(t, model.TierPlus, tier)
	assert.True(t, decision.Allowed)
	assert.Equal(t, int64(20), decision.Limit)
	assert.Equal(t, int64(1), decision.CurrentCount)
}

func TestStartSession_DeniesAtFreeTierCap(t *testing.T) {
	b := newTestBusiness(stubTierResolver{tier: model.TierFree}, newFakeCounterStore())

	for i := 0; i < 3; i++ {
		decision, _, err := b.StartSession(context.Background(), "u1", model.SessionTypeStory)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "claim %d should fit the free story cap", i+1)
	}

	decision, _, err := b.StartSession(context.Background(), "u1", model.SessionTypeStory)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(3), decision.Limit)
	assert.Positive(t, decision.RetryAfterSeconds)
}

func TestStartSession_TierLookupFailureFallsBackToFree(t *testing.T) {
	b := newTestBusiness(stubTierResolver{err: errors.New("subscriptions unreachable")}, newFakeCounterStore())

	decision, tier, err := b.StartSession(context.Background(), "u1", model.SessionTypeListening)
	require.NoError(t, err)
	assert.Equal(t, model.TierFree, tier)
	assert.True(t, decision.Allowed)
	assert.Equal(t, int64(2), decision.Limit, "fallback uses the free allowance")
}

func TestStartSession_UnlimitedTierNeverDenies(t *testing.T) {
	b := newTestBusiness(stubTierResolver{tier: model.TierUnlimited}, newFakeCounterStore())

	for i := 0; i < 50; i++ {
		decision, _, err := b.StartSession(context.Background(), "u1", model.SessionTypeVocabulary)
		require.NoError(t, err)
		require.True(t, decision.Allowed)
	}
}

func TestStartSession_StoreDownFailsClosed(t *testing.T) {
	store := newFakeCounterStore()
	store.err = errors.New("cluster unreachable")
	b := newTestBusiness(stubTierResolver{tier: model.TierPlus}, store)

	decision, _, err := b.StartSession(context.Background(), "u1", model.SessionTypeStory)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(quota.StoreDownRetryAfterSeconds), decision.RetryAfterSeconds)
}
