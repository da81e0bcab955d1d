package usage

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
)

type JobResponse struct {
	Job model.Job `json:"job"`
}

// GetJob returns one of the user's pre-generation job records.
//
//encore:api auth path=/v1/jobs/:id method=GET
func (s *Service) GetJob(ctx context.Context, id string) (*JobResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid job ID"}
	}

	job, err := s.lesson.GetJob(ctx, string(mustUserID()), id)
	if err != nil {
		rlog.Error("failed to get job", "error", err, "job_id", id)
		return nil, err
	}
	return &JobResponse{Job: *job}, nil
}
