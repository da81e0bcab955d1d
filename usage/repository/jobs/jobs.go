package jobs

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

const upsertQueuedJob = `-- name: UpsertQueuedJob :exec
INSERT INTO pregen_jobs (id, type, user_id, content_id, state, attempts, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'queued', 0, now(), now())
ON CONFLICT (id) DO NOTHING
`

type UpsertQueuedJobParams struct {
	ID        string
	Type      string
	UserID    string
	ContentID string
}

func (q *Queries) UpsertQueuedJob(ctx context.Context, arg UpsertQueuedJobParams) error {
	_, err := q.db.Exec(ctx, upsertQueuedJob, arg.ID, arg.Type, arg.UserID, arg.ContentID)
	return err
}

const markJobActive = `-- name: MarkJobActive :one
UPDATE pregen_jobs
SET state = 'active',
    attempts = attempts + 1,
    updated_at = now()
WHERE id = $1
RETURNING id, type, user_id, content_id, state, attempts, last_error, created_at, updated_at
`

func (q *Queries) MarkJobActive(ctx context.Context, id string) (Job, error) {
	row := q.db.QueryRow(ctx, markJobActive, id)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.UserID,
		&i.ContentID,
		&i.State,
		&i.Attempts,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const markJobCompleted = `-- name: MarkJobCompleted :exec
UPDATE pregen_jobs
SET state = 'completed',
    last_error = NULL,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkJobCompleted(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, markJobCompleted, id)
	return err
}

const markJobFailed = `-- name: MarkJobFailed :exec
UPDATE pregen_jobs
SET state = 'failed',
    last_error = $2,
    updated_at = now()
WHERE id = $1
`

type MarkJobFailedParams struct {
	ID        string
	LastError string
}

func (q *Queries) MarkJobFailed(ctx context.Context, arg MarkJobFailedParams) error {
	_, err := q.db.Exec(ctx, markJobFailed, arg.ID, arg.LastError)
	return err
}

const getJob = `-- name: GetJob :one
SELECT id, type, user_id, content_id, state, attempts, last_error, created_at, updated_at
FROM pregen_jobs
WHERE id = $1
`

func (q *Queries) GetJob(ctx context.Context, id string) (Job, error) {
	row := q.db.QueryRow(ctx, getJob, id)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.UserID,
		&i.ContentID,
		&i.State,
		&i.Attempts,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listJobsByUser = `-- name: ListJobsByUser :many
SELECT id, type, user_id, content_id, state, attempts, last_error, created_at, updated_at
FROM pregen_jobs
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListJobsByUser(ctx context.Context, userID string) ([]Job, error) {
	rows, err := q.db.Query(ctx, listJobsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Job
	for rows.Next() {
		var i Job
		if err := rows.Scan(
			&i.ID,
			&i.Type,
			&i.UserID,
			&i.ContentID,
			&i.State,
			&i.Attempts,
			&i.LastError,
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

const pruneTerminalJobs = `-- name: PruneTerminalJobs :execrows
DELETE FROM pregen_jobs
WHERE state = $1
  AND id NOT IN (
    SELECT id FROM pregen_jobs
    WHERE state = $1
    ORDER BY updated_at DESC
    LIMIT $2
  )
`

type PruneTerminalJobsParams struct {
	State string
	Keep  int32
}

func (q *Queries) PruneTerminalJobs(ctx context.Context, arg PruneTerminalJobsParams) (int64, error) {
	result, err := q.db.Exec(ctx, pruneTerminalJobs, arg.State, arg.Keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
