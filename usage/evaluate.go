package usage

import (
	"context"
	"strconv"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/model"
	"encore.app/usage/providers"
)

type EvaluateRequest struct {
	Language model.Language `json:"language" validate:"required"`
	Prompt   string         `json:"prompt" validate:"required,max=2000"`
	Answer   string         `json:"answer" validate:"required,max=2000"`
}

type EvaluateResponse struct {
	Evaluation      model.Evaluation `json:"evaluation"`
	BudgetRemaining int64            `json:"budget_remaining"`

	RateLimitLimit     string `header:"X-RateLimit-Limit" json:"-"`
	RateLimitRemaining string `header:"X-RateLimit-Remaining" json:"-"`
}

//encore:api auth path=/v1/evaluate method=POST
func (s *Service) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	userID := string(mustUserID())

	limited := s.limiter.Consume(ctx, userID, "evaluate")
	if !limited.Allowed {
		return nil, rateLimited(limited)
	}

	budget := s.budget.Consume(ctx, userID)
	if !budget.Allowed {
		return nil, quotaExceeded("daily generation budget exhausted", model.QuotaDetails{
			Limit:             budget.Budget,
			Count:             budget.Count,
			RetryAfterSeconds: budget.RetryAfterSeconds,
		})
	}

	// The evaluator call is bounded by the provider timeout; an unavailable
	// evaluator degrades to a tagged fallback, never an error.
	var evaluation model.Evaluation
	data, err := s.evaluator.Evaluate(ctx, providers.EvaluateRequest{
		UserID:   userID,
		Language: string(req.Language),
		Prompt:   req.Prompt,
		Answer:   req.Answer,
	})
	if err != nil {
		rlog.Warn("evaluator unavailable, returning fallback", "error", err)
		evaluation = model.UnavailableEvaluation("self_review")
	} else {
		evaluation = model.AvailableEvaluation(*data)
	}

	runAsync("forward_evaluation_event", func(ctx context.Context) error {
		return s.telemetry.Forward(ctx, providers.Event{
			Name:       "answer_evaluated",
			UserID:     userID,
			Attributes: map[string]string{"language": string(req.Language), "outcome": string(evaluation.Outcome)},
			OccurredAt: time.Now().UTC(),
		})
	})

	remaining := budget.Budget - budget.Count
	if remaining < 0 {
		remaining = 0
	}

	return &EvaluateResponse{
		Evaluation:         evaluation,
		BudgetRemaining:    remaining,
		RateLimitLimit:     strconv.FormatInt(limited.Limit, 10),
		RateLimitRemaining: strconv.FormatInt(limited.Remaining, 10),
	}, nil
}

// Validate implements validation for EvaluateRequest.
func (r *EvaluateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !r.Language.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unsupported language"}
	}
	return nil
}
