package usage

import (
	"context"

	"encore.dev/rlog"
)

type RefreshStreaksResponse struct {
	WordsReset int64 `json:"words_reset"`
}

//encore:api auth path=/v1/streaks/refresh method=POST
func (s *Service) RefreshStreaks(ctx context.Context) (*RefreshStreaksResponse, error) {
	userID := string(mustUserID())

	limited := s.limiter.Consume(ctx, userID, "refresh_streaks")
	if !limited.Allowed {
		return nil, rateLimited(limited)
	}

	reset, err := s.learner.RefreshStreaks(ctx, userID)
	if err != nil {
		rlog.Error("failed to refresh streaks", "error", err)
		return nil, err
	}

	return &RefreshStreaksResponse{WordsReset: reset}, nil
}
