package diary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

type fileRepo struct {
	path string
}

// NewFileRepo persists the diary collection as a single JSON document at
// path. The file is created lazily on the first write.
func NewFileRepo(path string) Repo {
	return &fileRepo{path: path}
}

func (r *fileRepo) Load(ctx context.Context) (*Storage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			// absent file is a fresh diary, not an error
			return &Storage{
				Version:      StorageVersion,
				Diaries:      []Entry{},
				LastModified: timestamp(time.Now()),
			}, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	var probe struct {
		Diaries json.RawMessage `json:"diaries"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	// a null diaries value decodes to a non-nil RawMessage, so check both
	if probe.Diaries == nil || string(probe.Diaries) == "null" {
		return nil, fmt.Errorf("%w: missing diaries array", ErrCorrupted)
	}

	var s Storage
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if s.Diaries == nil {
		s.Diaries = []Entry{}
	}
	return &s, nil
}

// Persist writes the whole collection to a temp file in the target
// directory and renames it into place, so a failed write never leaves a
// truncated diary behind.
func (r *fileRepo) Persist(ctx context.Context, s *Storage) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".diary-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
