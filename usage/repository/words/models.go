package words

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Word struct {
	ID        int32
	UserID    string
	Language  string
	Text      string
	Status    string
	Streak    int32
	SeenCount int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
