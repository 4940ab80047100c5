package imagegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/harunaka/kodomo-diary/internal/artifact"
	"github.com/harunaka/kodomo-diary/internal/remote"
)

// Service runs generation calls through the retry harness and optionally
// mirrors the produced image to the artifact store.
type Service struct {
	gen      Generator
	harness  *remote.Harness
	uploader artifact.Uploader // nil when the artifact store is disabled
	log      *zap.SugaredLogger
}

func NewService(gen Generator, h *remote.Harness, up artifact.Uploader, log *zap.SugaredLogger) *Service {
	return &Service{gen: gen, harness: h, uploader: up, log: log}
}

func (s *Service) Generate(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	res, err := remote.Do(ctx, s.harness, "image.generate", func(ctx context.Context) (*Result, error) {
		return s.gen.Generate(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start)

	if s.uploader != nil {
		url, err := s.uploadImage(ctx, res.ImagePath)
		if err != nil {
			// the local file is already safe; a failed mirror is not fatal
			s.log.Warnw("artifact upload failed", "path", res.ImagePath, "err", err)
		} else {
			res.RemoteURL = url
			s.log.Infow("artifact uploaded", "url", url)
		}
	}
	return res, nil
}

func (s *Service) uploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}

	key := "images/" + filepath.Base(path)
	return s.uploader.PutObject(ctx, key, f, info.Size(), "image/png")
}
