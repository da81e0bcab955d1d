package providers

import (
	"context"
	"fmt"
	"net/http"

	"encore.app/usage/model"
)

// TierResolver looks up a user's subscription tier. Subscription state is
// owned by an external service.
type TierResolver interface {
	Resolve(ctx context.Context, userID string) (model.Tier, error)
}

type TierClient struct {
	base string
	http *http.Client
}

var _ TierResolver = (*TierClient)(nil)

// NewTierClient returns the client for the subscription service.
func NewTierClient() *TierClient {
	return &TierClient{
		base: envOr("SUBSCRIPTIONS_URL", "http://localhost:8093"),
		http: newHTTPClient(),
	}
}

func (c *TierClient) Resolve(ctx context.Context, userID string) (model.Tier, error) {
	var resp struct {
		Tier model.Tier `json:"tier"`
	}
	url := fmt.Sprintf("%s/v1/subscriptions/%s", c.base, userID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &resp); err != nil {
		return "", err
	}
	return resp.Tier, nil
}
