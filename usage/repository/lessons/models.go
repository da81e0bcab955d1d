package lessons

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Completion struct {
	ID          int32
	UserID      string
	LessonID    string
	Language    string
	CompletedAt pgtype.Timestamptz
}
