package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"encore.app/usage/model"
)

// Generator is the external content-generation worker. Exists must be
// checked before generating: the queue delivers at least once, so the worker
// side is responsible for not producing duplicate output.
type Generator interface {
	Exists(ctx context.Context, jobType model.JobType, userID, contentID string) (bool, error)
	Generate(ctx context.Context, jobType model.JobType, userID, contentID, language string) error
}

type GeneratorClient struct {
	base string
	http *http.Client
}

var _ Generator = (*GeneratorClient)(nil)

// NewGeneratorClient returns the client for the content-generation worker.
func NewGeneratorClient() *GeneratorClient {
	return &GeneratorClient{
		base: envOr("GENERATOR_URL", "http://localhost:8092"),
		http: newHTTPClient(),
	}
}

func (c *GeneratorClient) Exists(ctx context.Context, jobType model.JobType, userID, contentID string) (bool, error) {
	url := fmt.Sprintf("%s/v1/content/%s/%s/%s", c.base, jobType, userID, contentID)
	err := doJSON(ctx, c.http, http.MethodGet, url, nil, nil)
	if errors.Is(err, errNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type generateRequest struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	ContentID string `json:"content_id"`
	Language  string `json:"language"`
}

func (c *GeneratorClient) Generate(ctx context.Context, jobType model.JobType, userID, contentID, language string) error {
	return doJSON(ctx, c.http, http.MethodPost, c.base+"/v1/content", generateRequest{
		Type:      string(jobType),
		UserID:    userID,
		ContentID: contentID,
		Language:  language,
	}, nil)
}
