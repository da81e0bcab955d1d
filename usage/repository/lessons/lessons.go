package lessons

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createCompletion = `-- name: CreateCompletion :one
INSERT INTO lesson_completions (user_id, lesson_id, language, completed_at)
VALUES ($1, $2, $3, now())
RETURNING id, user_id, lesson_id, language, completed_at
`

type CreateCompletionParams struct {
	UserID   string
	LessonID string
	Language string
}

func (q *Queries) CreateCompletion(ctx context.Context, arg CreateCompletionParams) (Completion, error) {
	row := q.db.QueryRow(ctx, createCompletion, arg.UserID, arg.LessonID, arg.Language)
	var i Completion
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.LessonID,
		&i.Language,
		&i.CompletedAt,
	)
	return i, err
}

const getCompletion = `-- name: GetCompletion :one
SELECT id, user_id, lesson_id, language, completed_at
FROM lesson_completions
WHERE user_id = $1 AND lesson_id = $2
`

type GetCompletionParams struct {
	UserID   string
	LessonID string
}

func (q *Queries) GetCompletion(ctx context.Context, arg GetCompletionParams) (Completion, error) {
	row := q.db.QueryRow(ctx, getCompletion, arg.UserID, arg.LessonID)
	var i Completion
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.LessonID,
		&i.Language,
		&i.CompletedAt,
	)
	return i, err
}

const countCompletions = `-- name: CountCompletions :one
SELECT count(*) FROM lesson_completions WHERE user_id = $1
`

func (q *Queries) CountCompletions(ctx context.Context, userID string) (int64, error) {
	row := q.db.QueryRow(ctx, countCompletions, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
