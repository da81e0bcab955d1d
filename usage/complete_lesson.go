package usage

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
	"encore.app/usage/providers"
)

type CompleteLessonRequest struct {
	Language model.Language `json:"language" validate:"required"`
}

type CompleteLessonResponse struct {
	Completion model.Completion `json:"completion"`

	// Pregeneration reports the aggregated lookahead outcome: "scheduled"
	// when every job was accepted, "degraded" when some were not. The
	// completion itself is recorded either way.
	Pregeneration model.PregenStatus `json:"pregeneration"`

	// TotalCompleted is the user's lifetime completion count, zero when the
	// count could not be read.
	TotalCompleted int64 `json:"total_completed"`
}

//encore:api auth path=/v1/lessons/:id/complete method=POST
func (s *Service) CompleteLesson(ctx context.Context, id string, req *CompleteLessonRequest) (*CompleteLessonResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid lesson ID"}
	}
	userID := string(mustUserID())

	limited := s.limiter.Consume(ctx, userID, "complete_lesson")
	if !limited.Allowed {
		return nil, rateLimited(limited)
	}

	completion, pregen, err := s.lesson.CompleteLesson(ctx, userID, id, req.Language)
	if err != nil {
		rlog.Error("failed to complete lesson", "error", err, "lesson_id", id)
		return nil, err
	}
	if pregen == model.PregenDegraded {
		rlog.Warn("completion recorded but pre-generation may be delayed",
			"lesson_id", id, "user_id", userID)
	}

	// The count is informational; a read failure must not undo a recorded
	// completion.
	total, err := s.lesson.CompletionCount(ctx, userID)
	if err != nil {
		rlog.Warn("failed to count completions", "error", err, "user_id", userID)
		total = 0
	}

	runAsync("forward_completion_event", func(ctx context.Context) error {
		return s.telemetry.Forward(ctx, providers.Event{
			Name:       "lesson_completed",
			UserID:     userID,
			Attributes: map[string]string{"lesson_id": id, "language": string(req.Language)},
			OccurredAt: time.Now().UTC(),
		})
	})

	return &CompleteLessonResponse{
		Completion:     *completion,
		Pregeneration:  pregen,
		TotalCompleted: total,
	}, nil
}

// Validate implements validation for CompleteLessonRequest.
func (r *CompleteLessonRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !r.Language.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unsupported language"}
	}
	return nil
}
