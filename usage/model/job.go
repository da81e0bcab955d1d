package model

import (
	"fmt"
	"time"
)

// JobType identifies the kind of content a pre-generation job produces.
type JobType string

const (
	JobTypeStory JobType = "story"
	JobTypeWord  JobType = "word"
)

// LookaheadJobTypes are the job types fanned out on every lesson completion.
var LookaheadJobTypes = []JobType{JobTypeStory, JobTypeWord}

type JobState string

const (
	JobStateQueued    JobState = "queued"
	JobStateActive    JobState = "active"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
)

// Job is the observability record of one unit of pre-generation work. The
// queue itself is Temporal; these rows exist so operators can inspect and
// count jobs without the Temporal UI.
type Job struct {
	ID        string    `json:"id"`
	Type      JobType   `json:"type"`
	UserID    string    `json:"user_id"`
	ContentID string    `json:"content_id"`
	State     JobState  `json:"state"`
	Attempts  int32     `json:"attempts"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobID derives the deterministic job identifier. It is a pure function of
// its inputs so duplicate triggers collapse to a single job.
func JobID(jobType JobType, userID, contentID string) string {
	return fmt.Sprintf("%s_%s_%s", jobType, userID, contentID)
}
