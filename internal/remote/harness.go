package remote

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
	DefaultTimeout      = 30 * time.Second
)

// Config holds the resolved settings of a harness. Zero fields are filled
// with defaults once, at construction; the value never changes afterwards.
type Config struct {
	// Model identifies the remote model/endpoint, for logging only.
	Model string
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// InitialDelay is the backoff before the first retry; each further
	// retry doubles it.
	InitialDelay time.Duration
	// Timeout bounds a single remote call. The harness does not enforce it
	// itself; provider clients hand it to their HTTP transport.
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Harness wraps an unreliable remote call with failure classification and
// exponential-backoff retries.
type Harness struct {
	cfg   Config
	log   *zap.SugaredLogger
	sleep func(time.Duration)
}

func NewHarness(cfg Config, log *zap.SugaredLogger) *Harness {
	return &Harness{cfg: cfg.withDefaults(), log: log, sleep: time.Sleep}
}

func (h *Harness) Config() Config { return h.cfg }

// Do runs fn, retrying retryable failures with pure exponential backoff
// (initialDelay * 2^attempt, no jitter). Non-retryable failures and
// exhausted retries propagate the last classified error to the caller.
// A successful response returns immediately, never retried.
func Do[T any](ctx context.Context, h *Harness, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	h.log.Infow("remote call starting", "op", op, "model", h.cfg.Model)

	var last *APIError
	for attempt := 0; attempt <= h.cfg.MaxRetries; attempt++ {
		h.log.Debugw("remote call attempt",
			"op", op, "attempt", attempt+1, "maxAttempts", h.cfg.MaxRetries+1)

		out, err := fn(ctx)
		if err == nil {
			h.log.Infow("remote call succeeded", "op", op, "attempts", attempt+1)
			return out, nil
		}

		last = Classify(err)
		if !last.Retryable {
			h.log.Errorw("remote call failed",
				"op", op, "code", last.Code, "retryable", false, "err", last)
			return zero, last
		}
		if attempt == h.cfg.MaxRetries {
			break
		}

		delay := h.cfg.InitialDelay * time.Duration(1<<attempt)
		h.log.Warnw("remote call attempt failed, retrying",
			"op", op, "code", last.Code, "delay", delay, "err", last)
		h.sleep(delay)
	}

	h.log.Errorw("remote call failed, retries exhausted",
		"op", op, "code", last.Code, "attempts", h.cfg.MaxRetries+1, "err", last)
	return zero, last
}
