package providers

import (
	"context"
	"net/http"
)

// SessionVerifier validates auth tokens with the identity service.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}

type verifierClient struct {
	base string
	http *http.Client
}

func NewSessionVerifier() SessionVerifier {
	return &verifierClient{
		base: envOr("AUTH_URL", "http://localhost:8095"),
		http: newHTTPClient(),
	}
}

func (c *verifierClient) Verify(ctx context.Context, token string) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	err := doJSON(ctx, c.http, http.MethodPost, c.base+"/v1/verify", struct {
		Token string `json:"token"`
	}{Token: token}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}
