package learner

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/usage/model"
	"encore.app/usage/repository/words"
	"encore.app/usage/wordcache"
)

// UpdateWordStatus writes the new status and synchronously invalidates the
// cached aggregate for that language. Every writer of learner words carries
// this invalidation duty; the cache does not watch the store.
func (b *business) UpdateWordStatus(ctx context.Context, userID string, wordID int32, status model.WordStatus, streak int32) (*model.Word, error) {
	current, err := b.wordRepo.GetWord(ctx, wordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "word not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load word"}
	}
	if current.UserID != userID {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "word belongs to another user"}
	}

	updated, err := b.wordRepo.UpdateWordStatus(ctx, words.UpdateWordStatusParams{
		ID:     wordID,
		Status: string(status),
		Streak: streak,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update word"}
	}

	b.cache.Invalidate(ctx, userID, updated.Language)

	word := convertDBWordToModel(updated)
	return &word, nil
}

// RefreshStreaks resets streaks that have gone stale. The write can touch any
// language, so the whole per-user cache is invalidated.
func (b *business) RefreshStreaks(ctx context.Context, userID string) (int64, error) {
	reset, err := b.wordRepo.ResetStaleStreaks(ctx, userID)
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to refresh streaks"}
	}

	b.cache.Invalidate(ctx, userID, wordcache.Wildcard)
	return reset, nil
}
