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
	"encore.app/usage/model"
)

func learnerService(t *testing.T, ctrl *gomock.Controller) (*Service, *learner_business.MockBusiness) {
	t.Helper()
	mockLearner := learner_business.NewMockBusiness(ctrl)
	return &Service{learner: mockLearner}, mockLearner
}

func TestGetWords(t *testing.T) {
	testCases := []struct {
		name          string
		language      string
		wordSet       *model.WordSet
		businessError error
		expectedCode  errs.ErrCode
	}{
		{
			name:     "cached_set_returned",
			language: "fr",
			wordSet: &model.WordSet{
				UserID:   "u2",
				Language: model.LanguageFrench,
				Words: []model.Word{
					{ID: 1, Text: "bonjour", Status: model.WordStatusKnown, Streak: 5},
					{ID: 2, Text: "merci", Status: model.WordStatusLearning, Streak: 1},
				},
				KnownCount:  1,
				GeneratedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			},
		},
		{
			name:          "store_error",
			language:      "de",
			businessError: errors.New("store unreachable"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockLearner := learnerService(t, ctrl)
			mockLearner.EXPECT().
				GetWords(gomock.Any(), gomock.Any(), model.Language(tc.language)).
				Return(tc.wordSet, tc.businessError)

			response, err := service.GetWords(context.Background(), tc.language)
			if tc.businessError != nil {
				require.Error(t, err)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tc.wordSet, response.WordSet)
		})
	}
}

func TestGetWords_UnsupportedLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No business expectation: validation rejects before the cache is touched.
	service, _ := learnerService(t, ctrl)

	response, err := service.GetWords(context.Background(), "xx")
	require.Error(t, err)
	assert.Nil(t, response)
	e := err.(*errs.Error)
	assert.Equal(t, errs.InvalidArgument, e.Code)
	assert.Contains(t, e.Message, "unsupported language")
}
