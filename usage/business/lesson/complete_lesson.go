package lesson

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
	"encore.app/usage/repository/jobs"
	"encore.app/usage/repository/lessons"
	"encore.app/usage/workflow"
)

// LookaheadUnits is how many upcoming content units are pre-generated per
// completed lesson, for each job type.
const LookaheadUnits = 3

// CompleteLesson records the completion and fans out lookahead jobs. The
// completion write is idempotent via the (user, lesson) unique key; the
// fan-out outcome is reported alongside and never rolls the completion back.
func (b *business) CompleteLesson(ctx context.Context, userID, lessonID string, language model.Language) (*model.Completion, model.PregenStatus, error) {
	dbCompletion, err := b.lessonRepo.CreateCompletion(ctx, lessons.CreateCompletionParams{
		UserID:   userID,
		LessonID: lessonID,
		Language: string(language),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Already completed. Re-run the fan-out anyway: enqueue is
			// idempotent, and a retried request may have lost the first
			// fan-out attempt.
			dbCompletion, err = b.lessonRepo.GetCompletion(ctx, lessons.GetCompletionParams{
				UserID:   userID,
				LessonID: lessonID,
			})
			if err != nil {
				return nil, "", &errs.Error{Code: errs.Internal, Message: "failed to load completion"}
			}
		} else {
			return nil, "", &errs.Error{Code: errs.Internal, Message: "failed to record completion"}
		}
	}

	status := b.enqueueLookahead(ctx, userID, lessonID, language)

	completion := convertDBCompletionToModel(dbCompletion)
	return completion, status, nil
}

// enqueueLookahead submits all lookahead jobs for one trigger together and
// waits for every acknowledgement, so a partial failure surfaces as one
// aggregated degraded outcome instead of being swallowed per job.
func (b *business) enqueueLookahead(ctx context.Context, userID, lessonID string, language model.Language) model.PregenStatus {
	type outcome struct {
		jobID string
		err   error
	}

	total := LookaheadUnits * len(model.LookaheadJobTypes)
	outcomes := make(chan outcome, total)
	var wg sync.WaitGroup

	for unit := 1; unit <= LookaheadUnits; unit++ {
		contentID := fmt.Sprintf("%s_next_%d", lessonID, unit)
		for _, jobType := range model.LookaheadJobTypes {
			wg.Add(1)
			go func(jobType model.JobType, contentID string) {
				defer wg.Done()
				jobID := model.JobID(jobType, userID, contentID)
				outcomes <- outcome{jobID: jobID, err: b.enqueueOne(ctx, jobID, jobType, userID, contentID, language)}
			}(jobType, contentID)
		}
	}
	wg.Wait()
	close(outcomes)

	var failed []string
	for o := range outcomes {
		if o.err != nil {
			rlog.Error("lookahead enqueue failed", "job_id", o.jobID, "error", o.err)
			failed = append(failed, o.jobID)
		}
	}
	if len(failed) > 0 {
		rlog.Error("lookahead fan-out degraded",
			"user_id", userID, "lesson_id", lessonID,
			"failed", strings.Join(failed, ","), "total", total)
		return model.PregenDegraded
	}
	return model.PregenScheduled
}

func (b *business) enqueueOne(ctx context.Context, jobID string, jobType model.JobType, userID, contentID string, language model.Language) error {
	// The observability row is best effort; the queue owns correctness.
	if err := b.jobRepo.UpsertQueuedJob(ctx, jobs.UpsertQueuedJobParams{
		ID:        jobID,
		Type:      string(jobType),
		UserID:    userID,
		ContentID: contentID,
	}); err != nil {
		rlog.Warn("failed to record queued job", "job_id", jobID, "error", err)
	}

	return b.enqueuer.Enqueue(ctx, workflow.PregenerationParams{
		JobID:     jobID,
		Type:      jobType,
		UserID:    userID,
		ContentID: contentID,
		Language:  string(language),
	})
}

// CompletionCount returns how many lessons the user has completed in total.
func (b *business) CompletionCount(ctx context.Context, userID string) (int64, error) {
	count, err := b.lessonRepo.CountCompletions(ctx, userID)
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to count completions"}
	}
	return count, nil
}

// ListJobs returns the user's pre-generation job records.
func (b *business) ListJobs(ctx context.Context, userID string) ([]model.Job, error) {
	dbJobs, err := b.jobRepo.ListJobsByUser(ctx, userID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list jobs"}
	}

	result := make([]model.Job, 0, len(dbJobs))
	for _, j := range dbJobs {
		result = append(result, convertDBJobToModel(j))
	}
	return result, nil
}

func convertDBCompletionToModel(c lessons.Completion) *model.Completion {
	return &model.Completion{
		ID:          c.ID,
		UserID:      c.UserID,
		LessonID:    c.LessonID,
		Language:    model.Language(c.Language),
		CompletedAt: c.CompletedAt.Time,
	}
}

func convertDBJobToModel(j jobs.Job) model.Job {
	job := model.Job{
		ID:        j.ID,
		Type:      model.JobType(j.Type),
		UserID:    j.UserID,
		ContentID: j.ContentID,
		State:     model.JobState(j.State),
		Attempts:  j.Attempts,
		CreatedAt: j.CreatedAt.Time,
		UpdatedAt: j.UpdatedAt.Time,
	}
	if j.LastError.Valid {
		job.LastError = &j.LastError.String
	}
	return job
}
