package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/harunaka/kodomo-diary/internal/remote"
)

const deepgramURL = "https://api.deepgram.com/v1/listen?model=nova-2&smart_format=true&language=ja"

type DeepgramClient struct {
	apiKey string
	client *http.Client
}

func NewDeepgramClient(apiKey string, timeout time.Duration) *DeepgramClient {
	return &DeepgramClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepgramURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", remote.NewNetworkError("deepgram request failed", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", remote.NewAuthError("invalid or missing Deepgram API key", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", remote.NewRateLimitError("Deepgram rate limit exceeded", nil)
	case resp.StatusCode != http.StatusOK:
		return "", remote.NewRequestError(fmt.Sprintf("deepgram error (status %d): %s", resp.StatusCode, body), nil)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", remote.NewRequestError("decode deepgram response", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", remote.NewRequestError("empty transcript", nil)
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}
