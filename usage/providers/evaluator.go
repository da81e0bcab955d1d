package providers

import (
	"context"
	"net/http"

	"encore.app/usage/model"
)

// Evaluator scores a learner's answer.
type Evaluator interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*model.EvaluationData, error)
}

type EvaluateRequest struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
}

type evaluatorClient struct {
	base string
	http *http.Client
}

func NewEvaluatorClient() Evaluator {
	return &evaluatorClient{
		base: envOr("EVALUATOR_URL", "http://localhost:8091"),
		http: newHTTPClient(),
	}
}

func (c *evaluatorClient) Evaluate(ctx context.Context, req EvaluateRequest) (*model.EvaluationData, error) {
	var data model.EvaluationData
	if err := doJSON(ctx, c.http, http.MethodPost, c.base+"/v1/evaluations", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
