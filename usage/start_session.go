package usage

import (
	"context"
	"strconv"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
)

type StartSessionRequest struct {
	SessionType model.SessionType `json:"session_type" validate:"required"`
}

type StartSessionResponse struct {
	SessionType  model.SessionType `json:"session_type"`
	Tier         model.Tier        `json:"tier"`
	Limit        int64             `json:"limit"`
	CurrentCount int64             `json:"current_count"`

	RateLimitLimit     string `header:"X-RateLimit-Limit" json:"-"`
	RateLimitRemaining string `header:"X-RateLimit-Remaining" json:"-"`
}

//encore:api auth path=/v1/sessions method=POST
func (s *Service) StartSession(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error) {
	userID := string(mustUserID())

	limited := s.limiter.Consume(ctx, userID, "start_session")
	if !limited.Allowed {
		return nil, rateLimited(limited)
	}

	claim, tier, err := s.session.StartSession(ctx, userID, req.SessionType)
	if err != nil {
		rlog.Error("failed to start session", "error", err, "session_type", req.SessionType)
		return nil, err
	}
	if !claim.Allowed {
		return nil, quotaExceeded("daily session quota reached", model.QuotaDetails{
			Limit:             claim.Limit,
			Count:             claim.CurrentCount,
			RetryAfterSeconds: claim.RetryAfterSeconds,
		})
	}

	return &StartSessionResponse{
		SessionType:        req.SessionType,
		Tier:               tier,
		Limit:              claim.Limit,
		CurrentCount:       claim.CurrentCount,
		RateLimitLimit:     strconv.FormatInt(limited.Limit, 10),
		RateLimitRemaining: strconv.FormatInt(limited.Remaining, 10),
	}, nil
}

// Validate implements validation for StartSessionRequest.
func (r *StartSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !r.SessionType.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown session type"}
	}
	return nil
}

// mustUserID returns the authenticated user. Endpoints declared with auth
// access never run without one.
func mustUserID() auth.UID {
	uid, _ := auth.UserID()
	return uid
}
