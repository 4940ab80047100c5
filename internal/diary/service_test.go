package diary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diary.json")
	return NewService(NewFileRepo(path)), path
}

func validEntry() NewEntry {
	return NewEntry{
		Date:      "2026-08-30",
		AudioText: "公園で遊んだ",
		ImagePath: "images/diary-1.png",
		Prompt:    "a child playing in the park, crayon drawing",
		Style:     "crayon",
		Mood:      "happy",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, validEntry())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.NotEmpty(t, saved.CreatedAt)

	st, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, st.Diaries, 1)

	got := st.Diaries[0]
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, "2026-08-30", got.Date)
	require.Equal(t, "公園で遊んだ", got.AudioText)
	require.Equal(t, "images/diary-1.png", got.ImagePath)
	require.Equal(t, "crayon", got.Style)
	require.Equal(t, "happy", got.Mood)
	require.Equal(t, StorageVersion, st.Version)
	require.NotEmpty(t, st.LastModified)
}

func TestSaveValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*NewEntry)
	}{
		{"empty audio text", func(e *NewEntry) { e.AudioText = "  " }},
		{"empty image path", func(e *NewEntry) { e.ImagePath = "" }},
		{"empty prompt", func(e *NewEntry) { e.Prompt = "" }},
		{"malformed date", func(e *NewEntry) { e.Date = "2026/08/30" }},
		{"impossible date", func(e *NewEntry) { e.Date = "2026-13-45" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEntry()
			tc.mutate(&e)
			_, err := svc.Save(ctx, e)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, validEntry())
	require.NoError(t, err)

	text := "川で泳いだ"
	updated, err := svc.Update(ctx, saved.ID, Patch{AudioText: &text})
	require.NoError(t, err)

	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, saved.CreatedAt, updated.CreatedAt)
	require.Equal(t, "川で泳いだ", updated.AudioText)
	require.NotEmpty(t, updated.UpdatedAt)
	require.GreaterOrEqual(t, updated.UpdatedAt, updated.CreatedAt)

	// untouched fields survive the merge
	require.Equal(t, saved.Prompt, updated.Prompt)
	require.Equal(t, saved.Style, updated.Style)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	text := "x"
	_, err := svc.Update(context.Background(), "nope", Patch{AudioText: &text})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRevalidates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, validEntry())
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, saved.ID, Patch{AudioText: &empty})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDelete(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, validEntry())
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, "unknown-id")
	require.NoError(t, err)
	require.False(t, ok)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after, "miss must not rewrite the file")

	ok, err = svc.Delete(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)

	st, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, st.Diaries)
}

func seedEntries(t *testing.T, svc Service) {
	t.Helper()
	ctx := context.Background()
	seeds := []NewEntry{
		{Date: "2026-08-10", AudioText: "海に行った", ImagePath: "a.png", Prompt: "the sea", Style: "watercolor", Mood: "happy"},
		{Date: "2026-08-20", AudioText: "犬と散歩した", ImagePath: "b.png", Prompt: "a dog walk", Style: "crayon", Mood: "calm"},
		{Date: "2026-08-15", AudioText: "海の絵を描いた", ImagePath: "c.png", Prompt: "drawing the sea", Style: "watercolor", Mood: "excited"},
	}
	for _, e := range seeds {
		_, err := svc.Save(ctx, e)
		require.NoError(t, err)
	}
}

func TestListSortByDate(t *testing.T) {
	svc, _ := newTestService(t)
	seedEntries(t, svc)
	ctx := context.Background()

	asc, err := svc.List(ctx, ListOptions{Sort: Sort{Field: "date", Order: "asc"}})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	for i := 1; i < len(asc); i++ {
		require.LessOrEqual(t, asc[i-1].Date, asc[i].Date)
	}

	desc, err := svc.List(ctx, ListOptions{}) // defaults: date desc
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		require.GreaterOrEqual(t, desc[i-1].Date, desc[i].Date)
	}
}

func TestListSortByUpdatedAtFallsBackToCreatedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diary.json")
	svc := NewService(NewFileRepo(path)).(*service)

	clock := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}

	ctx := context.Background()
	// later calendar dates saved first, none carrying updatedAt
	seeds := []NewEntry{
		{Date: "2026-08-20", AudioText: "c", ImagePath: "c.png", Prompt: "c"},
		{Date: "2026-08-10", AudioText: "a", ImagePath: "a.png", Prompt: "a"},
		{Date: "2026-08-15", AudioText: "b", ImagePath: "b.png", Prompt: "b"},
	}
	var ids []string
	for _, e := range seeds {
		saved, err := svc.Save(ctx, e)
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}

	got, err := svc.List(ctx, ListOptions{Sort: Sort{Field: "updatedAt", Order: "asc"}})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// with updatedAt absent everywhere, createdAt decides: save order,
	// not calendar order
	require.Equal(t, []string{"2026-08-20", "2026-08-10", "2026-08-15"},
		[]string{got[0].Date, got[1].Date, got[2].Date})
	for _, e := range got {
		require.Empty(t, e.UpdatedAt)
	}

	// once one entry gains an updatedAt, it carries the newest key and
	// sorts last ascending
	text := "b2"
	_, err = svc.Update(ctx, ids[2], Patch{AudioText: &text})
	require.NoError(t, err)

	got, err = svc.List(ctx, ListOptions{Sort: Sort{Field: "updatedAt", Order: "asc"}})
	require.NoError(t, err)
	require.Equal(t, ids[2], got[2].ID)
}

func TestListFiltersAreANDCombined(t *testing.T) {
	svc, _ := newTestService(t)
	seedEntries(t, svc)
	ctx := context.Background()

	byStyle, err := svc.List(ctx, ListOptions{Filter: Filter{Style: "watercolor"}})
	require.NoError(t, err)
	require.Len(t, byStyle, 2)
	for _, e := range byStyle {
		require.Equal(t, "watercolor", e.Style)
	}

	// date range AND search: only the 08-15 entry mentions the sea in range
	got, err := svc.List(ctx, ListOptions{Filter: Filter{
		StartDate: "2026-08-12",
		EndDate:   "2026-08-31",
		Search:    "海",
	}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2026-08-15", got[0].Date)
}

func TestListSearchIsCaseInsensitiveOverTextAndPrompt(t *testing.T) {
	svc, _ := newTestService(t)
	seedEntries(t, svc)

	got, err := svc.List(context.Background(), ListOptions{Filter: Filter{Search: "DOG"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "crayon", got[0].Style)
}

func TestListLimit(t *testing.T) {
	svc, _ := newTestService(t)
	seedEntries(t, svc)

	got, err := svc.List(context.Background(), ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	empty, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, empty.TotalEntries)
	require.Nil(t, empty.DateRange)

	seedEntries(t, svc)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalEntries)
	require.Equal(t, &DateRange{First: "2026-08-10", Last: "2026-08-20"}, stats.DateRange)
	require.Equal(t, map[string]int{"watercolor": 2, "crayon": 1}, stats.StyleCounts)
}
