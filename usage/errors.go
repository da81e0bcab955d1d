package usage

import (
	"encore.dev/beta/errs"

	"encore.app/usage/model"
	"encore.app/usage/quota"
)

// Quota denials are normal outcomes, surfaced as ResourceExhausted with
// structured details so callers can branch without parsing messages.

func rateLimited(dec quota.Decision) *errs.Error {
	return &errs.Error{
		Code:    errs.ResourceExhausted,
		Message: "rate limit exceeded",
		Details: model.QuotaDetails{
			Limit:             dec.Limit,
			Count:             dec.Count,
			RetryAfterSeconds: dec.RetryAfterSeconds,
		},
	}
}

func quotaExceeded(message string, details model.QuotaDetails) *errs.Error {
	return &errs.Error{
		Code:    errs.ResourceExhausted,
		Message: message,
		Details: details,
	}
}
