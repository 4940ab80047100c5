package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildKeepsUserInputVerbatim(t *testing.T) {
	b := NewBuilder(0)

	got := b.Build(Options{
		UserInput: "公園で遊んだ",
		Style:     StyleCrayon,
		Mood:      MoodHappy,
		Age:       4,
	}, "simple")

	require.Contains(t, got, "公園で遊んだ")
	require.Contains(t, got, stylePhrases[StyleCrayon])
	require.Contains(t, got, moodPhrases[MoodHappy])
	require.Contains(t, got, "preschoolers")
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(0)
	opts := Options{UserInput: "犬と散歩した", Style: StyleWatercolor, Mood: MoodCalm, Age: 7}

	require.Equal(t, b.Build(opts, "standard"), b.Build(opts, "standard"))
}

func TestBuildUnknownTemplateFallsBackToStandard(t *testing.T) {
	b := NewBuilder(0)
	opts := Options{UserInput: "海に行った"}

	require.Equal(t, b.Build(opts, "standard"), b.Build(opts, "no-such-template"))
}

func TestBuildTemplateDefaults(t *testing.T) {
	b := NewBuilder(0)

	// no style or mood given: the template's defaults apply
	got := b.Build(Options{UserInput: "雨の日"}, "storybook")
	require.Contains(t, got, stylePhrases[StyleStorybook])
	require.Contains(t, got, moodPhrases[MoodGentle])
}

func TestAgeBands(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{2, "toddlers"},
		{3, "toddlers"},
		{4, "preschoolers"},
		{6, "preschoolers"},
		{7, "young children"},
		{9, "young children"},
		{10, "older children"},
		{18, "older children"},
	}
	for _, tc := range cases {
		require.Contains(t, agePhrase(tc.age), tc.want, "age %d", tc.age)
	}
}

func TestValidate(t *testing.T) {
	b := NewBuilder(0)

	require.False(t, b.Validate(Options{UserInput: "", Age: 5}))
	require.False(t, b.Validate(Options{UserInput: "   ", Age: 5}))
	require.False(t, b.Validate(Options{UserInput: "x", Age: 19}))
	require.False(t, b.Validate(Options{UserInput: "x", Age: -1}))
	require.True(t, b.Validate(Options{UserInput: "x", Age: 5}))
	require.True(t, b.Validate(Options{UserInput: "x"})) // age unspecified
}

func TestVariantsLabelsAndMerge(t *testing.T) {
	b := NewBuilder(0)
	b.newID = func() string { return "fixed" }
	b.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	base := Options{UserInput: "花火を見た", Style: StyleCrayon, Mood: MoodHappy}
	exp := b.Variants(base, []Options{{Style: StylePastel}, {Mood: MoodExcited}}, "standard")

	require.Equal(t, "exp-fixed", exp.ID)
	require.Len(t, exp.Variants, 3)
	require.Equal(t, "base", exp.Variants[0].Label)
	require.Equal(t, "variation-1", exp.Variants[1].Label)
	require.Equal(t, "variation-2", exp.Variants[2].Label)

	// every variant keeps the shared user input
	for _, v := range exp.Variants {
		require.Contains(t, v.Prompt, "花火を見た")
	}

	// variation-1 swaps only the style; the base mood survives the merge
	require.Contains(t, exp.Variants[1].Prompt, stylePhrases[StylePastel])
	require.Contains(t, exp.Variants[1].Prompt, moodPhrases[MoodHappy])
	// variation-2 swaps only the mood
	require.Contains(t, exp.Variants[2].Prompt, stylePhrases[StyleCrayon])
	require.Contains(t, exp.Variants[2].Prompt, moodPhrases[MoodExcited])
}

func TestVariantsCapped(t *testing.T) {
	b := NewBuilder(2)

	overrides := []Options{{Style: StylePastel}, {Style: StyleAnime}, {Style: StyleStorybook}}
	exp := b.Variants(Options{UserInput: "x"}, overrides, "simple")

	require.Len(t, exp.Variants, 2)
	require.Equal(t, "base", exp.Variants[0].Label)
	require.Equal(t, "variation-1", exp.Variants[1].Label)
}

func TestNewBuilderCapDefaults(t *testing.T) {
	require.Equal(t, DefaultMaxVariants, NewBuilder(0).MaxVariants())
	require.Equal(t, DefaultMaxVariants, NewBuilder(-3).MaxVariants())
	require.Equal(t, 7, NewBuilder(7).MaxVariants())
}

func TestTemplateNamesMatchRegistry(t *testing.T) {
	for _, name := range TemplateNames() {
		require.Equal(t, name, Lookup(name).Name)
	}
	require.False(t, strings.ContainsRune(strings.Join(TemplateNames(), ","), ' '))
}
