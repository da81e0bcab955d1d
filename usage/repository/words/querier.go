package words

import (
	"context"
)

type Querier interface {
	GetWord(ctx context.Context, id int32) (Word, error)
	ListWordsByUserAndLanguage(ctx context.Context, arg ListWordsByUserAndLanguageParams) ([]Word, error)
	UpdateWordStatus(ctx context.Context, arg UpdateWordStatusParams) (Word, error)
	ResetStaleStreaks(ctx context.Context, userID string) (int64, error)
}

var _ Querier = (*Queries)(nil)
