package speech

import (
	"context"
	"time"
)

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type Recorder interface {
	Record(ctx context.Context, duration time.Duration) (filePath string, err error)
}
