package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harunaka/kodomo-diary/internal/remote"
)

// Model is the image-generation model identifier.
const Model = openai.CreateImageModelDallE3

type OpenAIClient struct {
	client   *openai.Client
	imageDir string
}

func NewOpenAIClient(apiKey, imageDir string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		imageDir: imageDir,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          Model,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Data) == 0 {
		// a 200 with no payload is still a failed request, not retried
		return nil, remote.NewRequestError("image response has no payload", nil)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, remote.NewRequestError("decode image payload", err)
	}

	if err := os.MkdirAll(c.imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	path := filepath.Join(c.imageDir, fmt.Sprintf("diary-%d.png", time.Now().UnixMilli()))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("write image file: %w", err)
	}

	return &Result{
		ImagePath:     path,
		Model:         Model,
		Prompt:        prompt,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
	}, nil
}

// classify maps provider failures onto the shared taxonomy by HTTP status.
func classify(err error) *remote.APIError {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return remote.Classify(err)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return remote.NewAuthError("invalid or missing OpenAI API key", err)
	case status == http.StatusTooManyRequests:
		return remote.NewRateLimitError("OpenAI rate limit exceeded", err)
	default:
		return remote.NewRequestError(fmt.Sprintf("OpenAI request failed (status %d)", status), err)
	}
}
