package lesson

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/usage/mocks/repository/jobs_repo"
	"encore.app/usage/mocks/repository/lessons_repo"
	"encore.app/usage/model"
	jobsrepo "encore.app/usage/repository/jobs"
	"encore.app/usage/repository/lessons"
	"encore.app/usage/workflow"
)

// fakeEnqueuer records submissions and injects failures per job ID.
type fakeEnqueuer struct {
	mu       sync.Mutex
	enqueued []workflow.PregenerationParams
	failIDs  map[string]error
}

func newFakeEnqueuer() *fakeEnqueuer {
	return &fakeEnqueuer{failIDs: make(map[string]error)}
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, params workflow.PregenerationParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[params.JobID]; ok {
		return err
	}
	f.enqueued = append(f.enqueued, params)
	return nil
}

func (f *fakeEnqueuer) jobIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.enqueued))
	for _, p := range f.enqueued {
		ids = append(ids, p.JobID)
	}
	sort.Strings(ids)
	return ids
}

func completionRow(userID, lessonID string) lessons.Completion {
	return lessons.Completion{
		ID:          7,
		UserID:      userID,
		LessonID:    lessonID,
		Language:    "fr",
		CompletedAt: pgtype.Timestamptz{Time: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), Valid: true},
	}
}

func TestCompleteLesson_EnqueuesLookaheadFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	enqueuer := newFakeEnqueuer()
	b := NewLessonBusiness(mockLessons, mockJobs, enqueuer)

	mockLessons.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(completionRow("u2", "L7"), nil)
	mockJobs.EXPECT().
		UpsertQueuedJob(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(6)

	completion, status, err := b.CompleteLesson(context.Background(), "u2", "L7", model.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, model.PregenScheduled, status)
	assert.Equal(t, "L7", completion.LessonID)

	assert.Equal(t, []string{
		"story_u2_L7_next_1",
		"story_u2_L7_next_2",
		"story_u2_L7_next_3",
		"word_u2_L7_next_1",
		"word_u2_L7_next_2",
		"word_u2_L7_next_3",
	}, enqueuer.jobIDs())
}

func TestCompleteLesson_DuplicateCompletionStillFansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	enqueuer := newFakeEnqueuer()
	b := NewLessonBusiness(mockLessons, mockJobs, enqueuer)

	mockLessons.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(lessons.Completion{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mockLessons.EXPECT().
		GetCompletion(gomock.Any(), lessons.GetCompletionParams{UserID: "u2", LessonID: "L7"}).
		Return(completionRow("u2", "L7"), nil)
	mockJobs.EXPECT().
		UpsertQueuedJob(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(6)

	completion, status, err := b.CompleteLesson(context.Background(), "u2", "L7", model.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, model.PregenScheduled, status)
	assert.Equal(t, "L7", completion.LessonID)
	assert.Len(t, enqueuer.jobIDs(), 6, "duplicate trigger re-submits; the queue collapses the IDs")
}

func TestCompleteLesson_PartialEnqueueFailureIsDegradedNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	enqueuer := newFakeEnqueuer()
	enqueuer.failIDs["word_u2_L7_next_2"] = errors.New("queue unavailable")
	b := NewLessonBusiness(mockLessons, mockJobs, enqueuer)

	mockLessons.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(completionRow("u2", "L7"), nil)
	mockJobs.EXPECT().
		UpsertQueuedJob(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(6)

	completion, status, err := b.CompleteLesson(context.Background(), "u2", "L7", model.LanguageFrench)
	require.NoError(t, err, "enqueue failure must not roll back the completion")
	assert.NotNil(t, completion)
	assert.Equal(t, model.PregenDegraded, status)
	assert.Len(t, enqueuer.jobIDs(), 5)
}

func TestCompleteLesson_JobRowFailureDoesNotBlockEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	enqueuer := newFakeEnqueuer()
	b := NewLessonBusiness(mockLessons, mockJobs, enqueuer)

	mockLessons.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(completionRow("u2", "L7"), nil)
	mockJobs.EXPECT().
		UpsertQueuedJob(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(6)

	_, status, err := b.CompleteLesson(context.Background(), "u2", "L7", model.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, model.PregenScheduled, status, "observability rows are best effort")
	assert.Len(t, enqueuer.jobIDs(), 6)
}

func TestCompleteLesson_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	b := NewLessonBusiness(mockLessons, mockJobs, newFakeEnqueuer())

	mockLessons.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(lessons.Completion{}, assert.AnError)

	_, _, err := b.CompleteLesson(context.Background(), "u2", "L7", model.LanguageFrench)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record completion")
}

func TestCompletionCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	b := NewLessonBusiness(mockLessons, mockJobs, newFakeEnqueuer())

	mockLessons.EXPECT().CountCompletions(gomock.Any(), "u2").Return(int64(12), nil)

	count, err := b.CompletionCount(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestGetJob(t *testing.T) {
	row := jobsrepo.Job{
		ID:        "story_u2_L7_next_1",
		Type:      "story",
		UserID:    "u2",
		ContentID: "L7_next_1",
		State:     "completed",
		Attempts:  1,
		CreatedAt: pgtype.Timestamptz{Time: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: time.Date(2026, 3, 14, 12, 1, 0, 0, time.UTC), Valid: true},
	}

	testCases := []struct {
		name         string
		userID       string
		mockReturn   jobsrepo.Job
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name:       "owner_reads_job",
			userID:     "u2",
			mockReturn: row,
		},
		{
			name:         "unknown_job",
			userID:       "u2",
			mockError:    pgx.ErrNoRows,
			expectedCode: errs.NotFound,
		},
		{
			name:         "other_users_job",
			userID:       "u9",
			mockReturn:   row,
			expectedCode: errs.PermissionDenied,
		},
		{
			name:         "store_error",
			userID:       "u2",
			mockError:    assert.AnError,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLessons := lessons_repo.NewMockQuerier(ctrl)
			mockJobs := jobs_repo.NewMockQuerier(ctrl)
			b := NewLessonBusiness(mockLessons, mockJobs, newFakeEnqueuer())

			mockJobs.EXPECT().GetJob(gomock.Any(), row.ID).Return(tc.mockReturn, tc.mockError)

			job, err := b.GetJob(context.Background(), tc.userID, row.ID)
			if tc.expectedCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, err.(*errs.Error).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.JobStateCompleted, job.State)
			assert.Equal(t, "u2", job.UserID)
		})
	}
}

func TestListJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLessons := lessons_repo.NewMockQuerier(ctrl)
	mockJobs := jobs_repo.NewMockQuerier(ctrl)
	b := NewLessonBusiness(mockLessons, mockJobs, newFakeEnqueuer())

	mockJobs.EXPECT().
		ListJobsByUser(gomock.Any(), "u2").
		Return([]jobsrepo.Job{{
			ID:        "story_u2_L7_next_1",
			Type:      "story",
			UserID:    "u2",
			ContentID: "L7_next_1",
			State:     "failed",
			Attempts:  3,
			LastError: pgtype.Text{String: "generation timed out", Valid: true},
			CreatedAt: pgtype.Timestamptz{Time: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), Valid: true},
			UpdatedAt: pgtype.Timestamptz{Time: time.Date(2026, 3, 14, 12, 5, 0, 0, time.UTC), Valid: true},
		}}, nil)

	jobs, err := b.ListJobs(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, model.JobStateFailed, jobs[0].State)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, "generation timed out", *jobs[0].LastError)
}
