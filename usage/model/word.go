package model

import (
	"time"
)

// Language is an ISO 639-1 code for a study language.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageGerman  Language = "de"
	LanguageItalian Language = "it"
	LanguageSpanish Language = "es"
)

// SupportedLanguages is the closed set of languages the product teaches.
// Wildcard cache invalidation enumerates this set.
var SupportedLanguages = []Language{
	LanguageFrench,
	LanguageGerman,
	LanguageItalian,
	LanguageSpanish,
}

func (l Language) Valid() bool {
	for _, s := range SupportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

type WordStatus string

const (
	WordStatusNew      WordStatus = "new"
	WordStatusLearning WordStatus = "learning"
	WordStatusKnown    WordStatus = "known"
)

type Word struct {
	ID        int32      `json:"id"`
	UserID    string     `json:"user_id"`
	Language  Language   `json:"language"`
	Text      string     `json:"text"`
	Status    WordStatus `json:"status"`
	Streak    int32      `json:"streak"`
	SeenCount int32      `json:"seen_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// WordSet is the derived aggregate served to clients: a user's learned
// words for one language. This is what the read-through cache stores.
type WordSet struct {
	UserID      string    `json:"user_id"`
	Language    Language  `json:"language"`
	Words       []Word    `json:"words"`
	KnownCount  int32     `json:"known_count"`
	GeneratedAt time.Time `json:"generated_at"`
}
