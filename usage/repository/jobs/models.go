package jobs

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Job struct {
	ID        string
	Type      string
	UserID    string
	ContentID string
	State     string
	Attempts  int32
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
