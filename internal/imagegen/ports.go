package imagegen

import (
	"context"
	"time"
)

// Result describes one generated illustration.
type Result struct {
	ImagePath     string
	RemoteURL     string // set when the artifact store is configured
	Model         string
	Prompt        string
	RevisedPrompt string
	Elapsed       time.Duration
}

// Generator performs a single generation call against a provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}
