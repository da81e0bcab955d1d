package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/usage/model"
)

// TaskQueue is the Temporal task queue for pre-generation jobs.
const TaskQueue = "pregeneration"

const (
	// MaxAttempts bounds retries of one generation job.
	MaxAttempts = 3
	// BackoffBase is the delay before the first retry; subsequent retries
	// double it.
	BackoffBase = 2 * time.Second
	// GenerationTimeout bounds one call into the generation worker.
	GenerationTimeout = 15 * time.Second
)

// PregenerationParams identifies one unit of pre-generation work. JobID is
// deterministic ({type}_{user}_{content}) and doubles as the workflow ID, so
// duplicate triggers collapse into a single execution.
type PregenerationParams struct {
	JobID     string        `json:"job_id"`
	Type      model.JobType `json:"type"`
	UserID    string        `json:"user_id"`
	ContentID string        `json:"content_id"`
	Language  string        `json:"language"`
}

// Pregeneration drives one job through generation with bounded retries.
// Once a generation attempt is running it is never cancelled from here; a
// job either completes, retries after backoff, or exhausts its attempts.
func Pregeneration(ctx workflow.Context, params PregenerationParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting pre-generation workflow", "jobID", params.JobID, "type", params.Type)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: GenerationTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    BackoffBase,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    MaxAttempts,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	err := workflow.ExecuteActivity(activityCtx, GenerateContentActivity, params).Get(ctx, nil)
	if err != nil {
		logger.Error("Pre-generation exhausted retries", "jobID", params.JobID, "error", err)
		return recordFailure(ctx, params.JobID, err)
	}

	logger.Info("Pre-generation workflow completed", "jobID", params.JobID)
	return nil
}

// recordFailure marks the job row failed. The bookkeeping write gets its own
// short retry policy; if it still fails the original generation error wins.
func recordFailure(ctx workflow.Context, jobID string, genErr error) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	if err := workflow.ExecuteActivity(activityCtx, MarkJobFailedActivity, jobID, genErr.Error()).Get(ctx, nil); err != nil {
		workflow.GetLogger(ctx).Error("Failed to record job failure", "jobID", jobID, "error", err)
	}
	return genErr
}
