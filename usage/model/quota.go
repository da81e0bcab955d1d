package model

// QuotaDetails is attached to ResourceExhausted errors so callers can branch
// on the denial without parsing messages.
type QuotaDetails struct {
	Limit             int64 `json:"limit"`
	Count             int64 `json:"count"`
	RetryAfterSeconds int64 `json:"retry_after_seconds,omitempty"`
}

// ErrDetails marks QuotaDetails as attachable to an errs.Error.
func (QuotaDetails) ErrDetails() {}
