package usage

import (
	"context"
	"sync"
	"testing"

	"encore.app/usage/quota"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.
// It supports all the same flags that the `go test` command does.

// fakeCounterStore backs real Limiter/Budget instances in endpoint tests; the
// denial paths need genuine increment semantics, not call expectations.
type fakeCounterStore struct {
	mu     sync.Mutex
	counts map[quota.CounterKey]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[quota.CounterKey]int64)}
}

func (f *fakeCounterStore) Incr(ctx context.Context, key quota.CounterKey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func newTestLimiter(rules map[string]quota.Rule) *quota.Limiter {
	return quota.NewLimiter(quota.NewCounter(newFakeCounterStore()), rules)
}

func newTestBudget(limit int64) *quota.Budget {
	return quota.NewBudget(quota.NewCounter(newFakeCounterStore()), limit)
}

// syncAsync makes runAsync execute inline so tests can assert on side calls
// that are fire-and-forget in production.
func syncAsync(t *testing.T) {
	t.Helper()
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
}
