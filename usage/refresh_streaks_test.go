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

	"encore.app/usage/mocks/business/learner_business"
	"encore.app/usage/quota"
)

func streakService(t *testing.T, ctrl *gomock.Controller, refreshLimit int64) (*Service, *learner_business.MockBusiness) {
	t.Helper()
	mockLearner := learner_business.NewMockBusiness(ctrl)
	service := &Service{
		limiter: newTestLimiter(map[string]quota.Rule{
			"refresh_streaks": {Limit: refreshLimit, Window: time.Hour},
		}),
		learner: mockLearner,
	}
	return service, mockLearner
}

func TestRefreshStreaks(t *testing.T) {
	testCases := []struct {
		name          string
		wordsReset    int64
		businessError error
	}{
		{
			name:       "stale_streaks_reset",
			wordsReset: 4,
		},
		{
			name:       "nothing_stale",
			wordsReset: 0,
		},
		{
			name:          "store_error",
			businessError: errors.New("store unreachable"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockLearner := streakService(t, ctrl, 6)
			mockLearner.EXPECT().
				RefreshStreaks(gomock.Any(), gomock.Any()).
				Return(tc.wordsReset, tc.businessError)

			response, err := service.RefreshStreaks(context.Background())
			if tc.businessError != nil {
				require.Error(t, err)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wordsReset, response.WordsReset)
		})
	}
}

func TestRefreshStreaks_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockLearner := streakService(t, ctrl, 1)
	mockLearner.EXPECT().
		RefreshStreaks(gomock.Any(), gomock.Any()).
		Return(int64(2), nil).
		Times(1)

	_, err := service.RefreshStreaks(context.Background())
	require.NoError(t, err)

	_, err = service.RefreshStreaks(context.Background())
	require.Error(t, err)
	e := err.(*errs.Error)
	assert.Equal(t, errs.ResourceExhausted, e.Code)
	assert.Contains(t, e.Message, "rate limit")
}
