package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/usage/model"
	"encore.app/usage/providers"
	"encore.app/usage/repository/jobs"
)

// TerminalJobsKept bounds how many completed and how many failed job rows are
// retained for observability before pruning.
const TerminalJobsKept = 100

// ActivityDependencies holds the dependencies needed by activities.
type ActivityDependencies struct {
	Jobs      jobs.Querier
	Generator providers.Generator
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities.
func SetActivityDependencies(jobQuerier jobs.Querier, generator providers.Generator) {
	activityDeps = &ActivityDependencies{
		Jobs:      jobQuerier,
		Generator: generator,
	}
}

// GenerateContentActivity runs one generation attempt for a job.
func GenerateContentActivity(ctx context.Context, params PregenerationParams) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing generation attempt", "jobID", params.JobID, "type", params.Type)

	if activityDeps == nil || activityDeps.Jobs == nil || activityDeps.Generator == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	// Attempt bookkeeping is observability only; a missing row must not
	// block generation.
	if _, err := activityDeps.Jobs.MarkJobActive(ctx, params.JobID); err != nil {
		logger.Warn("Failed to mark job active", "jobID", params.JobID, "error", err)
	}

	exists, err := activityDeps.Generator.Exists(ctx, params.Type, params.UserID, params.ContentID)
	if err != nil {
		logger.Error("Existence check failed", "jobID", params.JobID, "error", err)
		return err
	}
	if exists {
		logger.Info("Content already generated, completing job", "jobID", params.JobID)
		completeJob(ctx, params.JobID)
		return nil
	}

	if err := activityDeps.Generator.Generate(ctx, params.Type, params.UserID, params.ContentID, params.Language); err != nil {
		logger.Error("Generation attempt failed", "jobID", params.JobID, "error", err)
		return err
	}

	completeJob(ctx, params.JobID)
	logger.Info("Generation attempt succeeded", "jobID", params.JobID)
	return nil
}

// MarkJobFailedActivity records terminal failure of a job.
func MarkJobFailedActivity(ctx context.Context, jobID, lastError string) error {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.Jobs == nil {
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.Jobs.MarkJobFailed(ctx, jobs.MarkJobFailedParams{ID: jobID, LastError: lastError})
	if err != nil {
		logger.Error("Failed to mark job failed", "jobID", jobID, "error", err)
		return err
	}

	pruneTerminal(ctx, string(model.JobStateFailed))
	return nil
}

func completeJob(ctx context.Context, jobID string) {
	logger := activity.GetLogger(ctx)
	if err := activityDeps.Jobs.MarkJobCompleted(ctx, jobID); err != nil {
		logger.Warn("Failed to mark job completed", "jobID", jobID, "error", err)
		return
	}
	pruneTerminal(ctx, string(model.JobStateCompleted))
}

func pruneTerminal(ctx context.Context, state string) {
	logger := activity.GetLogger(ctx)
	pruned, err := activityDeps.Jobs.PruneTerminalJobs(ctx, jobs.PruneTerminalJobsParams{
		State: state,
		Keep:  TerminalJobsKept,
	})
	if err != nil {
		logger.Warn("Failed to prune terminal jobs", "state", state, "error", err)
		return
	}
	if pruned > 0 {
		logger.Info("Pruned terminal jobs", "state", state, "count", pruned)
	}
}
