package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/usage/repository/jobs"
	"encore.app/usage/repository/lessons"
	"encore.app/usage/repository/words"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Words   words.Querier
	Lessons lessons.Querier
	Jobs    jobs.Querier
}

// NewRepository creates a Repository with all domain queriers.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Words:   words.New(db),
		Lessons: lessons.New(db),
		Jobs:    jobs.New(db),
	}
}
