// Package providers holds thin clients for the external collaborators of the
// usage core: the content generator, the answer evaluator, the subscription
// service, the auth verifier, and the telemetry sink. Each client carries a
// bounded timeout; policy for an unavailable collaborator (fail closed, fail
// soft, tagged fallback) belongs to the caller, not to these clients.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// CallTimeout bounds any single collaborator call.
const CallTimeout = 15 * time.Second

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: CallTimeout}
}

// doJSON issues a JSON request and decodes the response into out (when out is
// non-nil). Non-2xx statuses become errors; 404 is reported as errNotFound so
// callers can branch on absence.
func doJSON(ctx context.Context, client *http.Client, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

var errNotFound = fmt.Errorf("not found")
