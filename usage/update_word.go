package usage

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
)

type UpdateWordRequest struct {
	Status model.WordStatus `json:"status" validate:"required"`
	Streak int32            `json:"streak" validate:"gte=0"`
}

type WordResponse struct {
	Word model.Word `json:"word"`
}

//encore:api auth path=/v1/words/:id/status method=PUT
func (s *Service) UpdateWordStatus(ctx context.Context, id int, req *UpdateWordRequest) (*WordResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid word ID"}
	}

	word, err := s.learner.UpdateWordStatus(ctx, string(mustUserID()), int32(id), req.Status, req.Streak)
	if err != nil {
		rlog.Error("failed to update word status", "error", err, "word_id", id)
		return nil, err
	}

	return &WordResponse{Word: *word}, nil
}

// Validate implements validation for UpdateWordRequest.
func (r *UpdateWordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	switch r.Status {
	case model.WordStatusNew, model.WordStatusLearning, model.WordStatusKnown:
		return nil
	}
	return &errs.Error{Code: errs.InvalidArgument, Message: "unknown word status"}
}
