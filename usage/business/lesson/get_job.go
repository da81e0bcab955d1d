package lesson

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/usage/model"
)

// GetJob returns one pre-generation job record, scoped to its owner.
func (b *business) GetJob(ctx context.Context, userID, jobID string) (*model.Job, error) {
	dbJob, err := b.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "job not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load job"}
	}
	if dbJob.UserID != userID {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "job belongs to another user"}
	}

	job := convertDBJobToModel(dbJob)
	return &job, nil
}
