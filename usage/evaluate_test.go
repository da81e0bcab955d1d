package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/usage/mocks/providers/evaluator_mock"
	"encore.app/usage/mocks/providers/telemetry_mock"
	"encore.app/usage/model"
	"encore.app/usage/providers"
	"encore.app/usage/quota"
)

func evaluateService(t *testing.T, ctrl *gomock.Controller, evaluateLimit, budgetLimit int64) (*Service, *evaluator_mock.MockEvaluator, *telemetry_mock.MockTelemetry) {
	t.Helper()
	mockEvaluator := evaluator_mock.NewMockEvaluator(ctrl)
	mockTelemetry := telemetry_mock.NewMockTelemetry(ctrl)
	service := &Service{
		limiter: newTestLimiter(map[string]quota.Rule{
			"evaluate": {Limit: evaluateLimit, Window: time.Hour},
		}),
		budget:    newTestBudget(budgetLimit),
		evaluator: mockEvaluator,
		telemetry: mockTelemetry,
	}
	return service, mockEvaluator, mockTelemetry
}

func TestEvaluate_AvailableResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	syncAsync(t)

	service, mockEvaluator, mockTelemetry := evaluateService(t, ctrl, 10, 50)

	mockEvaluator.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&model.EvaluationData{Correct: true, Score: 0.9, Feedback: "well done"}, nil)

	var forwarded providers.Event
	mockTelemetry.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event providers.Event) error {
			forwarded = event
			return nil
		})

	response, err := service.Evaluate(context.Background(), &EvaluateRequest{
		Language: model.LanguageFrench,
		Prompt:   "Translate: hello",
		Answer:   "bonjour",
	})
	require.NoError(t, err)
	assert.Equal(t, model.EvaluationAvailable, response.Evaluation.Outcome)
	require.NotNil(t, response.Evaluation.Result)
	assert.True(t, response.Evaluation.Result.Correct)
	assert.Empty(t, response.Evaluation.FallbackHint)
	assert.Equal(t, int64(49), response.BudgetRemaining)
	assert.Equal(t, "10", response.RateLimitLimit)
	assert.Equal(t, "9", response.RateLimitRemaining)

	assert.Equal(t, "answer_evaluated", forwarded.Name)
	assert.Equal(t, string(model.EvaluationAvailable), forwarded.Attributes["outcome"])
}

func TestEvaluate_EvaluatorDownReturnsTaggedFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	syncAsync(t)

	service, mockEvaluator, mockTelemetry := evaluateService(t, ctrl, 10, 50)

	mockEvaluator.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("evaluator timeout"))
	mockTelemetry.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil)

	response, err := service.Evaluate(context.Background(), &EvaluateRequest{
		Language: model.LanguageGerman,
		Prompt:   "Translate: hello",
		Answer:   "hallo",
	})
	require.NoError(t, err, "an unavailable evaluator degrades, never errors")
	assert.Equal(t, model.EvaluationUnavailable, response.Evaluation.Outcome)
	assert.Nil(t, response.Evaluation.Result)
	assert.Equal(t, "self_review", response.Evaluation.FallbackHint)
	assert.Equal(t, int64(49), response.BudgetRemaining, "the budget unit is spent even on fallback")
}

func TestEvaluate_BudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	syncAsync(t)

	service, mockEvaluator, mockTelemetry := evaluateService(t, ctrl, 10, 1)

	mockEvaluator.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&model.EvaluationData{Correct: true}, nil)
	mockTelemetry.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil)

	request := &EvaluateRequest{Language: model.LanguageFrench, Prompt: "p", Answer: "a"}
	_, err := service.Evaluate(context.Background(), request)
	require.NoError(t, err)

	// Second call crosses the daily budget; no evaluator call, no event.
	response, err := service.Evaluate(context.Background(), request)
	require.Error(t, err)
	assert.Nil(t, response)
	e := err.(*errs.Error)
	assert.Equal(t, errs.ResourceExhausted, e.Code)
	details := e.Details.(model.QuotaDetails)
	assert.Equal(t, int64(1), details.Limit)
	assert.Equal(t, int64(2), details.Count)
	assert.Positive(t, details.RetryAfterSeconds)
}

func TestEvaluate_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	syncAsync(t)

	service, mockEvaluator, mockTelemetry := evaluateService(t, ctrl, 1, 50)

	mockEvaluator.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&model.EvaluationData{Correct: true}, nil)
	mockTelemetry.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil)

	request := &EvaluateRequest{Language: model.LanguageFrench, Prompt: "p", Answer: "a"}
	_, err := service.Evaluate(context.Background(), request)
	require.NoError(t, err)

	_, err = service.Evaluate(context.Background(), request)
	require.Error(t, err)
	e := err.(*errs.Error)
	assert.Equal(t, errs.ResourceExhausted, e.Code)
	assert.Contains(t, e.Message, "rate limit")
	details := e.Details.(model.QuotaDetails)
	assert.Equal(t, int64(1), details.Limit)
	assert.Equal(t, int64(2), details.Count, "denial carries the post-increment count")
}

func TestEvaluateRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *EvaluateRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &EvaluateRequest{Language: model.LanguageFrench, Prompt: "p", Answer: "a"},
		},
		{
			name:          "missing_prompt",
			request:       &EvaluateRequest{Language: model.LanguageFrench, Answer: "a"},
			expectedError: "required",
		},
		{
			name:          "missing_answer",
			request:       &EvaluateRequest{Language: model.LanguageFrench, Prompt: "p"},
			expectedError: "required",
		},
		{
			name:          "unsupported_language",
			request:       &EvaluateRequest{Language: "xx", Prompt: "p", Answer: "a"},
			expectedError: "unsupported language",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
