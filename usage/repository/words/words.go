package words

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

const getWord = `-- name: GetWord :one
SELECT id, user_id, language, text, status, streak, seen_count, created_at, updated_at
FROM learner_words
WHERE id = $1
`

func (q *Queries) GetWord(ctx context.Context, id int32) (Word, error) {
	row := q.db.QueryRow(ctx, getWord, id)
	var i Word
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Language,
		&i.Text,
		&i.Status,
		&i.Streak,
		&i.SeenCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listWordsByUserAndLanguage = `-- name: ListWordsByUserAndLanguage :many
SELECT id, user_id, language, text, status, streak, seen_count, created_at, updated_at
FROM learner_words
WHERE user_id = $1 AND language = $2
ORDER BY text
`

type ListWordsByUserAndLanguageParams struct {
	UserID   string
	Language string
}

func (q *Queries) ListWordsByUserAndLanguage(ctx context.Context, arg ListWordsByUserAndLanguageParams) ([]Word, error) {
	rows, err := q.db.Query(ctx, listWordsByUserAndLanguage, arg.UserID, arg.Language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Word
	for rows.Next() {
		var i Word
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Language,
			&i.Text,
			&i.Status,
			&i.Streak,
			&i.SeenCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateWordStatus = `-- name: UpdateWordStatus :one
UPDATE learner_words
SET status = $2,
    streak = $3,
    seen_count = seen_count + 1,
    updated_at = now()
WHERE id = $1
RETURNING id, user_id, language, text, status, streak, seen_count, created_at, updated_at
`

type UpdateWordStatusParams struct {
	ID     int32
	Status string
	Streak int32
}

func (q *Queries) UpdateWordStatus(ctx context.Context, arg UpdateWordStatusParams) (Word, error) {
	row := q.db.QueryRow(ctx, updateWordStatus, arg.ID, arg.Status, arg.Streak)
	var i Word
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Language,
		&i.Text,
		&i.Status,
		&i.Streak,
		&i.SeenCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const resetStaleStreaks = `-- name: ResetStaleStreaks :execrows
UPDATE learner_words
SET streak = 0,
    updated_at = now()
WHERE user_id = $1
  AND streak > 0
  AND updated_at < now() - interval '48 hours'
`

func (q *Queries) ResetStaleStreaks(ctx context.Context, userID string) (int64, error) {
	result, err := q.db.Exec(ctx, resetStaleStreaks, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
