package learner

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/usage/model"
	"encore.app/usage/repository/words"
)

// GetWords returns the user's learned-word aggregate for one language,
// served through the read-through cache.
func (b *business) GetWords(ctx context.Context, userID string, language model.Language) (*model.WordSet, error) {
	set, err := b.cache.Read(ctx, userID, language, func(ctx context.Context) (model.WordSet, error) {
		return b.loadWordSet(ctx, userID, language)
	})
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// loadWordSet builds the aggregate from the source-of-truth store.
func (b *business) loadWordSet(ctx context.Context, userID string, language model.Language) (model.WordSet, error) {
	dbWords, err := b.wordRepo.ListWordsByUserAndLanguage(ctx, words.ListWordsByUserAndLanguageParams{
		UserID:   userID,
		Language: string(language),
	})
	if err != nil {
		return model.WordSet{}, &errs.Error{Code: errs.Internal, Message: "failed to load learned words"}
	}

	set := model.WordSet{
		UserID:      userID,
		Language:    language,
		Words:       make([]model.Word, 0, len(dbWords)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, w := range dbWords {
		word := convertDBWordToModel(w)
		if word.Status == model.WordStatusKnown {
			set.KnownCount++
		}
		set.Words = append(set.Words, word)
	}
	return set, nil
}

func convertDBWordToModel(w words.Word) model.Word {
	return model.Word{
		ID:        w.ID,
		UserID:    w.UserID,
		Language:  model.Language(w.Language),
		Text:      w.Text,
		Status:    model.WordStatus(w.Status),
		Streak:    w.Streak,
		SeenCount: w.SeenCount,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
}
