package usage

import (
	"context"
	"strings"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/usage/providers"
)

var sessionVerifier = providers.NewSessionVerifier()

// AuthHandler resolves a bearer token to a user identity. Verification is
// owned by the identity service; this handler only relays its answer.
//
//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "missing session token"}
	}

	userID, err := sessionVerifier.Verify(ctx, token)
	if err != nil {
		rlog.Warn("session verification failed", "error", err)
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "invalid session"}
	}
	return auth.UID(userID), nil
}
