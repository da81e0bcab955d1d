package usage

import (
	"context"

	"encore.dev/rlog"

	"encore.app/usage/model"
)

type JobsResponse struct {
	Jobs []model.Job `json:"jobs"`
}

// ListJobs exposes the user's pre-generation job records for debugging and
// support tooling.
//
//encore:api auth path=/v1/jobs method=GET
func (s *Service) ListJobs(ctx context.Context) (*JobsResponse, error) {
	jobs, err := s.lesson.ListJobs(ctx, string(mustUserID()))
	if err != nil {
		rlog.Error("failed to list jobs", "error", err)
		return nil, err
	}
	return &JobsResponse{Jobs: jobs}, nil
}
