package diary

import (
	"context"
	"errors"
)

// StorageVersion is the on-disk format version tag.
const StorageVersion = "1.0"

var (
	ErrNotFound   = errors.New("entry not found")
	ErrValidation = errors.New("validation error")
	ErrCorrupted  = errors.New("storage file corrupted")
)

// Entry is one diary record. ID and CreatedAt are assigned once at save
// time and never change afterwards. Timestamps are RFC3339 UTC strings so
// lexicographic order matches chronological order.
type Entry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	AudioText string `json:"audioText"`
	ImagePath string `json:"imagePath"`
	Prompt    string `json:"prompt"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Style     string `json:"style,omitempty"`
	Mood      string `json:"mood,omitempty"`
}

// Storage is the whole persisted collection.
type Storage struct {
	Version      string  `json:"version"`
	Diaries      []Entry `json:"diaries"`
	LastModified string  `json:"lastModified"`
}

// NewEntry carries the caller-supplied fields of an entry about to be saved.
type NewEntry struct {
	Date      string
	AudioText string
	ImagePath string
	Prompt    string
	Style     string
	Mood      string
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Date      *string
	AudioText *string
	ImagePath *string
	Prompt    *string
	Style     *string
	Mood      *string
}

// Filter predicates are optional and AND-combined.
type Filter struct {
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD
	Search    string // case-insensitive substring over audioText OR prompt
	Style     string // exact match
	Mood      string // exact match
}

type Sort struct {
	Field string // date | createdAt | updatedAt (default date)
	Order string // asc | desc (default desc)
}

type ListOptions struct {
	Filter Filter
	Sort   Sort
	Limit  int // 0 = no limit
}

type DateRange struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Stats is the aggregate view over all entries. DateRange is nil when the
// diary is empty.
type Stats struct {
	TotalEntries int
	DateRange    *DateRange
	StyleCounts  map[string]int
}

// Repo reads and writes the whole collection at once.
type Repo interface {
	Load(ctx context.Context) (*Storage, error)
	Persist(ctx context.Context, s *Storage) error
}

type Service interface {
	Load(ctx context.Context) (*Storage, error)
	Save(ctx context.Context, e NewEntry) (*Entry, error)
	Update(ctx context.Context, id string, p Patch) (*Entry, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
	Stats(ctx context.Context) (*Stats, error)
}
