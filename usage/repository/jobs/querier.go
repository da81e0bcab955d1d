package jobs

import (
	"context"
)

type Querier interface {
	UpsertQueuedJob(ctx context.Context, arg UpsertQueuedJobParams) error
	MarkJobActive(ctx context.Context, id string) (Job, error)
	MarkJobCompleted(ctx context.Context, id string) error
	MarkJobFailed(ctx context.Context, arg MarkJobFailedParams) error
	GetJob(ctx context.Context, id string) (Job, error)
	ListJobsByUser(ctx context.Context, userID string) ([]Job, error)
	PruneTerminalJobs(ctx context.Context, arg PruneTerminalJobsParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
