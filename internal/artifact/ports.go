package artifact

import (
	"context"
	"io"
)

// Uploader pushes a generated artifact to a remote store and returns its
// public URL.
type Uploader interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
}
