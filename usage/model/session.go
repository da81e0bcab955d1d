package model

// SessionType identifies a kind of study session. Each type carries its own
// daily cap, which varies by subscription tier.
type SessionType string

const (
	SessionTypeStory      SessionType = "story"
	SessionTypeVocabulary SessionType = "vocabulary"
	SessionTypeListening  SessionType = "listening"
)

func (s SessionType) Valid() bool {
	switch s {
	case SessionTypeStory, SessionTypeVocabulary, SessionTypeListening:
		return true
	}
	return false
}

// Tier is a subscription tier. Tier resolution is owned by the subscription
// service; this package only consumes the resolved value.
type Tier string

const (
	TierFree      Tier = "free"
	TierPlus      Tier = "plus"
	TierUnlimited Tier = "unlimited"
)
