package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
)

// DefaultMaxVariants caps how many prompts one experiment may produce,
// the base prompt included.
const DefaultMaxVariants = 5

// Builder renders image-generation prompts from diary options. Building is
// pure and deterministic; only experiment ids depend on the clock.
type Builder struct {
	maxVariants int
	newID       func() string
	now         func() time.Time
}

// NewBuilder creates a builder whose experiments hold at most maxVariants
// prompts; values <= 0 fall back to DefaultMaxVariants.
func NewBuilder(maxVariants int) *Builder {
	if maxVariants <= 0 {
		maxVariants = DefaultMaxVariants
	}
	return &Builder{
		maxVariants: maxVariants,
		newID:       func() string { return xid.New().String() },
		now:         time.Now,
	}
}

// MaxVariants reports the experiment cap.
func (b *Builder) MaxVariants() int { return b.maxVariants }

// Validate checks the option shape; callers decide whether to abort.
func (b *Builder) Validate(opts Options) bool {
	if strings.TrimSpace(opts.UserInput) == "" {
		return false
	}
	if opts.Age != 0 && (opts.Age < 1 || opts.Age > 18) {
		return false
	}
	return true
}

// Build renders the named template with the style and mood phrases, then
// appends the age-band, detail and aspect clause.
func (b *Builder) Build(opts Options, templateName string) string {
	tpl := Lookup(templateName)

	style := opts.Style
	if !ValidStyle(style) {
		style = tpl.DefaultStyle
	}
	mood := opts.Mood
	if !ValidMood(mood) {
		mood = tpl.DefaultMood
	}
	detail := opts.Detail
	if _, ok := detailPhrases[detail]; !ok {
		detail = DetailStandard
	}
	aspect := opts.Aspect
	if _, ok := aspectPhrases[aspect]; !ok {
		aspect = AspectSquare
	}

	head := fmt.Sprintf(tpl.Format,
		strings.TrimSpace(opts.UserInput),
		stylePhrases[style],
		moodPhrases[mood],
	)
	tail := strings.Join([]string{
		agePhrase(opts.Age),
		detailPhrases[detail],
		aspectPhrases[aspect],
	}, ", ")

	return head + ". " + strings.ToUpper(tail[:1]) + tail[1:] + "."
}

// merge lays non-zero override fields over base.
func merge(base, o Options) Options {
	if o.UserInput != "" {
		base.UserInput = o.UserInput
	}
	if o.Style != "" {
		base.Style = o.Style
	}
	if o.Mood != "" {
		base.Mood = o.Mood
	}
	if o.Age != 0 {
		base.Age = o.Age
	}
	if o.Detail != "" {
		base.Detail = o.Detail
	}
	if o.Aspect != "" {
		base.Aspect = o.Aspect
	}
	return base
}

// Variants builds the base prompt plus one prompt per override, labeled
// base, variation-1, variation-2, ... and capped at the builder's maximum.
func (b *Builder) Variants(base Options, overrides []Options, templateName string) Experiment {
	exp := Experiment{
		ID:        "exp-" + b.newID(),
		CreatedAt: b.now(),
	}

	exp.Variants = append(exp.Variants, Variant{
		Label:  "base",
		Prompt: b.Build(base, templateName),
	})
	for i, o := range overrides {
		if len(exp.Variants) >= b.maxVariants {
			break
		}
		exp.Variants = append(exp.Variants, Variant{
			Label:  fmt.Sprintf("variation-%d", i+1),
			Prompt: b.Build(merge(base, o), templateName),
		})
	}
	return exp
}

// DefaultVariations is the stock override set used by the prompt test
// command: alternative style, mood and density takes on the same text.
func DefaultVariations() []Options {
	return []Options{
		{Style: StylePastel},
		{Mood: MoodAdventurous},
		{Detail: DetailHigh, Aspect: AspectLandscape},
	}
}
