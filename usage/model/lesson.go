package model

import (
	"time"
)

// Completion records that a user finished a lesson. The (user, lesson) pair
// is unique in the store, which makes recording idempotent.
type Completion struct {
	ID          int32     `json:"id"`
	UserID      string    `json:"user_id"`
	LessonID    string    `json:"lesson_id"`
	Language    Language  `json:"language"`
	CompletedAt time.Time `json:"completed_at"`
}

// PregenStatus reports the aggregated outcome of the lookahead fan-out that
// follows a completion. A degraded status means the completion was recorded
// but some pre-generation jobs could not be enqueued.
type PregenStatus string

const (
	PregenScheduled PregenStatus = "scheduled"
	PregenDegraded  PregenStatus = "degraded"
)
