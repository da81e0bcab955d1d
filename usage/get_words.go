package usage

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
)

type WordSetResponse struct {
	WordSet model.WordSet `json:"word_set"`
}

//encore:api auth path=/v1/words/:language method=GET
func (s *Service) GetWords(ctx context.Context, language string) (*WordSetResponse, error) {
	lang := model.Language(language)
	if !lang.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unsupported language"}
	}

	set, err := s.learner.GetWords(ctx, string(mustUserID()), lang)
	if err != nil {
		rlog.Error("failed to get learned words", "error", err, "language", language)
		return nil, err
	}

	return &WordSetResponse{WordSet: *set}, nil
}
