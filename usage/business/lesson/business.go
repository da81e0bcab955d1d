package lesson

import (
	"context"

	"encore.app/usage/model"
	"encore.app/usage/repository/jobs"
	"encore.app/usage/repository/lessons"
	"encore.app/usage/workflow"
)

// Enqueuer submits one pre-generation job to the durable queue. Submitting a
// job whose deterministic ID is already active or recently completed must be
// a no-op, not an error.
type Enqueuer interface {
	Enqueue(ctx context.Context, params workflow.PregenerationParams) error
}

type Business interface {
	CompleteLesson(ctx context.Context, userID, lessonID string, language model.Language) (*model.Completion, model.PregenStatus, error)
	CompletionCount(ctx context.Context, userID string) (int64, error)
	ListJobs(ctx context.Context, userID string) ([]model.Job, error)
	GetJob(ctx context.Context, userID, jobID string) (*model.Job, error)
}

type business struct {
	lessonRepo lessons.Querier
	jobRepo    jobs.Querier
	enqueuer   Enqueuer
}

func NewLessonBusiness(lessonRepo lessons.Querier, jobRepo jobs.Querier, enqueuer Enqueuer) Business {
	return &business{
		lessonRepo: lessonRepo,
		jobRepo:    jobRepo,
		enqueuer:   enqueuer,
	}
}
