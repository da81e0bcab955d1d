package learner

import (
	"context"

	"encore.app/usage/model"
	"encore.app/usage/repository/words"
	"encore.app/usage/wordcache"
)

type Business interface {
	GetWords(ctx context.Context, userID string, language model.Language) (*model.WordSet, error)
	UpdateWordStatus(ctx context.Context, userID string, wordID int32, status model.WordStatus, streak int32) (*model.Word, error)
	RefreshStreaks(ctx context.Context, userID string) (int64, error)
}

type business struct {
	wordRepo words.Querier
	cache    *wordcache.Cache
}

func NewLearnerBusiness(wordRepo words.Querier, cache *wordcache.Cache) Business {
	return &business{
		wordRepo: wordRepo,
		cache:    cache,
	}
}
