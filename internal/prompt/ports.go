package prompt

import "time"

// Style is a closed set of illustration styles.
type Style string

const (
	StyleWatercolor Style = "watercolor"
	StyleCrayon     Style = "crayon"
	StyleAnime      Style = "anime"
	StylePastel     Style = "pastel"
	StyleStorybook  Style = "storybook"
)

// Mood is a closed set of emotional tones.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodExcited     Mood = "excited"
	MoodCalm        Mood = "calm"
	MoodGentle      Mood = "gentle"
	MoodAdventurous Mood = "adventurous"
)

type Detail string

const (
	DetailLow      Detail = "low"
	DetailStandard Detail = "standard"
	DetailHigh     Detail = "high"
)

type Aspect string

const (
	AspectSquare    Aspect = "square"
	AspectLandscape Aspect = "landscape"
	AspectPortrait  Aspect = "portrait"
)

// Options is the ephemeral request shape a prompt is built from. It is
// never persisted; style, mood and the rendered prompt are copied into the
// diary entry at save time.
type Options struct {
	UserInput string
	Style     Style
	Mood      Mood
	Age       int // 1..18, 0 = unspecified
	Detail    Detail
	Aspect    Aspect
}

// Template is a named format pattern with default parameter values.
type Template struct {
	Name         string
	Description  string
	Format       string // placeholders: user input, style phrase, mood phrase
	DefaultStyle Style
	DefaultMood  Mood
}

// Variant is one labeled prompt of an A/B experiment.
type Variant struct {
	Label  string
	Prompt string
}

// Experiment groups the base prompt and its variations under one id.
type Experiment struct {
	ID        string
	CreatedAt time.Time
	Variants  []Variant
}
