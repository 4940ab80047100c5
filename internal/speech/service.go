package speech

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harunaka/kodomo-diary/internal/remote"
)

// Service captures audio and turns it into text, running the remote
// transcription through the retry harness.
type Service struct {
	stt     Transcriber
	rec     Recorder
	harness *remote.Harness
	log     *zap.SugaredLogger
}

func NewService(stt Transcriber, rec Recorder, h *remote.Harness, log *zap.SugaredLogger) *Service {
	return &Service{stt: stt, rec: rec, harness: h, log: log}
}

func (s *Service) Capture(ctx context.Context, duration time.Duration) (string, error) {
	return s.rec.Record(ctx, duration)
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	return remote.Do(ctx, s.harness, "speech.transcribe", func(ctx context.Context) (string, error) {
		return s.stt.Transcribe(ctx, filePath)
	})
}
