package wordcache

import (
	"context"
	"errors"
	"sync"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/usage/model"
	"encore.app/usage/quota"
)

// Wildcard invalidates a user's entries across every supported language.
const Wildcard = "*"

type wordSetKey struct {
	UserID   string
	Language string
}

// learnerWords holds the cached learned-word aggregate per (user, language).
// The short expiry bounds staleness for entries that miss an invalidation.
var learnerWords = cache.NewStructKeyspace[wordSetKey, model.WordSet](quota.UsageCluster, cache.KeyspaceConfig{
	KeyPattern:    "cache/learner_words/:UserID/:Language",
	DefaultExpiry: cache.ExpireIn(5 * time.Minute),
})

// Store is the keyspace surface the cache policy runs on.
type Store interface {
	Get(ctx context.Context, userID string, language model.Language) (model.WordSet, error)
	Set(ctx context.Context, userID string, language model.Language, set model.WordSet) error
	Delete(ctx context.Context, userID string, language model.Language) error
}

type keyspaceStore struct{}

// NewKeyspaceStore returns the production Store backed by the usage cluster.
func NewKeyspaceStore() Store {
	return keyspaceStore{}
}

func (keyspaceStore) Get(ctx context.Context, userID string, language model.Language) (model.WordSet, error) {
	return learnerWords.Get(ctx, wordSetKey{UserID: userID, Language: string(language)})
}

func (keyspaceStore) Set(ctx context.Context, userID string, language model.Language, set model.WordSet) error {
	return learnerWords.Set(ctx, wordSetKey{UserID: userID, Language: string(language)}, set)
}

func (keyspaceStore) Delete(ctx context.Context, userID string, language model.Language) error {
	_, err := learnerWords.Delete(ctx, wordSetKey{UserID: userID, Language: string(language)})
	return err
}

// Loader fetches the aggregate from the source-of-truth store on a miss.
type Loader func(ctx context.Context) (model.WordSet, error)

// Cache is the read-through cache for learned-word aggregates.
type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// Read returns the cached aggregate for (user, language), falling through to
// loader on a miss. Store failures are soft misses: the read still succeeds
// from the source of truth. Write-back is best effort and never fails the
// read.
func (c *Cache) Read(ctx context.Context, userID string, language model.Language, loader Loader) (model.WordSet, error) {
	set, err := c.store.Get(ctx, userID, language)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, cache.Miss) {
		rlog.Warn("word cache read failed, treating as miss",
			"user_id", userID, "language", language, "error", err)
	}

	fresh, err := loader(ctx)
	if err != nil {
		return model.WordSet{}, err
	}

	if setErr := c.store.Set(ctx, userID, language, fresh); setErr != nil {
		rlog.Warn("word cache write-back failed",
			"user_id", userID, "language", language, "error", setErr)
	}
	return fresh, nil
}

// Invalidate deletes the entry for one language, or for every supported
// language when called with Wildcard. Writers of the underlying data must
// call this synchronously on their write path. Deletion failures are logged
// and absorbed; the short keyspace expiry is the backstop.
func (c *Cache) Invalidate(ctx context.Context, userID string, language string) {
	if language != Wildcard {
		if err := c.store.Delete(ctx, userID, model.Language(language)); err != nil {
			rlog.Error("word cache invalidation failed",
				"user_id", userID, "language", language, "error", err)
		}
		return
	}

	// The language set is closed, so wildcard invalidation enumerates it
	// exactly. Deletions are independent and run concurrently.
	var wg sync.WaitGroup
	for _, lang := range model.SupportedLanguages {
		wg.Add(1)
		go func(lang model.Language) {
			defer wg.Done()
			if err := c.store.Delete(ctx, userID, lang); err != nil {
				rlog.Error("word cache invalidation failed",
					"user_id", userID, "language", lang, "error", err)
			}
		}(lang)
	}
	wg.Wait()
}
