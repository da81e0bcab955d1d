package providers

import (
	"context"
	"net/http"
	"time"
)

// Telemetry forwards product events. Callers treat forwarding as
// fire-and-forget; a lost event is never worth failing a request over.
type Telemetry interface {
	Forward(ctx context.Context, event Event) error
}

type Event struct {
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type telemetryClient struct {
	base string
	http *http.Client
}

func NewTelemetryClient() Telemetry {
	return &telemetryClient{
		base: envOr("TELEMETRY_URL", "http://localhost:8094"),
		http: newHTTPClient(),
	}
}

func (c *telemetryClient) Forward(ctx context.Context, event Event) error {
	return doJSON(ctx, c.http, http.MethodPost, c.base+"/v1/events", event, nil)
}
