package lessons

import (
	"context"
)

type Querier interface {
	CreateCompletion(ctx context.Context, arg CreateCompletionParams) (Completion, error)
	GetCompletion(ctx context.Context, arg GetCompletionParams) (Completion, error)
	CountCompletions(ctx context.Context, userID string) (int64, error)
}

var _ Querier = (*Queries)(nil)
