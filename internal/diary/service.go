package diary

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type service struct {
	repo Repo
	now  func() time.Time
}

func NewService(repo Repo) Service {
	return &service{repo: repo, now: time.Now}
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func newEntryID(date string, t time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s", date, t.UnixMilli(), suffix)
}

func validateFields(e NewEntry) error {
	if !dateRe.MatchString(e.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, e.Date)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, e.Date)
	}
	if strings.TrimSpace(e.AudioText) == "" {
		return fmt.Errorf("%w: audioText is required", ErrValidation)
	}
	if strings.TrimSpace(e.ImagePath) == "" {
		return fmt.Errorf("%w: imagePath is required", ErrValidation)
	}
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("%w: prompt is required", ErrValidation)
	}
	return nil
}

func (s *service) Load(ctx context.Context) (*Storage, error) {
	return s.repo.Load(ctx)
}

func (s *service) persist(ctx context.Context, st *Storage) error {
	st.LastModified = timestamp(s.now())
	return s.repo.Persist(ctx, st)
}

func (s *service) Save(ctx context.Context, e NewEntry) (*Entry, error) {
	if err := validateFields(e); err != nil {
		return nil, err
	}

	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := Entry{
		ID:        newEntryID(e.Date, now),
		Date:      e.Date,
		AudioText: e.AudioText,
		ImagePath: e.ImagePath,
		Prompt:    e.Prompt,
		CreatedAt: timestamp(now),
		Style:     e.Style,
		Mood:      e.Mood,
	}

	st.Diaries = append(st.Diaries, entry)
	if err := s.persist(ctx, st); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (*Entry, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range st.Diaries {
		if st.Diaries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	merged := st.Diaries[idx]
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.AudioText != nil {
		merged.AudioText = *p.AudioText
	}
	if p.ImagePath != nil {
		merged.ImagePath = *p.ImagePath
	}
	if p.Prompt != nil {
		merged.Prompt = *p.Prompt
	}
	if p.Style != nil {
		merged.Style = *p.Style
	}
	if p.Mood != nil {
		merged.Mood = *p.Mood
	}

	if err := validateFields(NewEntry{
		Date:      merged.Date,
		AudioText: merged.AudioText,
		ImagePath: merged.ImagePath,
		Prompt:    merged.Prompt,
	}); err != nil {
		return nil, err
	}

	// id and createdAt are immutable
	merged.ID = st.Diaries[idx].ID
	merged.CreatedAt = st.Diaries[idx].CreatedAt
	merged.UpdatedAt = timestamp(s.now())

	st.Diaries[idx] = merged
	if err := s.persist(ctx, st); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}

	kept := st.Diaries[:0:0]
	for _, e := range st.Diaries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(st.Diaries) {
		// nothing removed, nothing written
		return false, nil
	}

	st.Diaries = kept
	if err := s.persist(ctx, st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(st.Diaries))
	for _, e := range st.Diaries {
		if matches(e, opts.Filter) {
			out = append(out, e)
		}
	}

	sortEntries(out, opts.Sort)

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func matches(e Entry, f Filter) bool {
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.AudioText), q) &&
			!strings.Contains(strings.ToLower(e.Prompt), q) {
			return false
		}
	}
	if f.Style != "" && e.Style != f.Style {
		return false
	}
	if f.Mood != "" && e.Mood != f.Mood {
		return false
	}
	return true
}

// sortKey falls back to createdAt when the requested field is absent on a
// record, so entries without updatedAt still order deterministically.
func sortKey(e Entry, field string) string {
	var v string
	switch field {
	case "createdAt":
		v = e.CreatedAt
	case "updatedAt":
		v = e.UpdatedAt
	default:
		v = e.Date
	}
	if v == "" {
		v = e.CreatedAt
	}
	return v
}

func sortEntries(entries []Entry, s Sort) {
	field := s.Field
	if field == "" {
		field = "date"
	}
	asc := s.Order == "asc"

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := sortKey(entries[i], field), sortKey(entries[j], field)
		if asc {
			return a < b
		}
		return a > b
	})
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalEntries: len(st.Diaries),
		StyleCounts:  map[string]int{},
	}

	for _, e := range st.Diaries {
		if e.Style != "" {
			stats.StyleCounts[e.Style]++
		}
		if stats.DateRange == nil {
			stats.DateRange = &DateRange{First: e.Date, Last: e.Date}
			continue
		}
		if e.Date < stats.DateRange.First {
			stats.DateRange.First = e.Date
		}
		if e.Date > stats.DateRange.Last {
			stats.DateRange.Last = e.Date
		}
	}
	return stats, nil
}
