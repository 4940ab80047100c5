package prompt

// DefaultTemplate is used when no template name is given or the name is
// unknown.
const DefaultTemplate = "standard"

var templates = map[string]Template{
	"standard": {
		Name:         "standard",
		Description:  "balanced children's book illustration",
		Format:       "A children's picture book illustration of %s, drawn as %s, with %s",
		DefaultStyle: StyleWatercolor,
		DefaultMood:  MoodHappy,
	},
	"simple": {
		Name:         "simple",
		Description:  "short prompt with minimal framing",
		Format:       "%s, %s, %s",
		DefaultStyle: StyleCrayon,
		DefaultMood:  MoodHappy,
	},
	"detailed": {
		Name:         "detailed",
		Description:  "rich scene description for elaborate artwork",
		Format:       "A richly detailed scene showing %s. The artwork is %s. The overall feeling is %s",
		DefaultStyle: StyleAnime,
		DefaultMood:  MoodExcited,
	},
	"storybook": {
		Name:         "storybook",
		Description:  "classic fairy-tale page framing",
		Format:       "A page from a classic storybook depicting %s, illustrated as %s, carrying %s",
		DefaultStyle: StyleStorybook,
		DefaultMood:  MoodGentle,
	},
}

// Lookup returns the named template, falling back to the standard one for
// unknown names.
func Lookup(name string) Template {
	if t, ok := templates[name]; ok {
		return t
	}
	return templates[DefaultTemplate]
}

// TemplateNames lists the registered template names.
func TemplateNames() []string {
	return []string{"standard", "simple", "detailed", "storybook"}
}

var stylePhrases = map[Style]string{
	StyleWatercolor: "a soft watercolor painting with gentle washes of color",
	StyleCrayon:     "a cheerful crayon drawing with bold waxy strokes",
	StyleAnime:      "a bright anime illustration with clean lines",
	StylePastel:     "a dreamy pastel artwork with powdery textures",
	StyleStorybook:  "a warm storybook illustration with ink outlines",
}

var moodPhrases = map[Mood]string{
	MoodHappy:       "a joyful, sunny atmosphere",
	MoodExcited:     "an energetic, sparkling atmosphere",
	MoodCalm:        "a quiet, peaceful atmosphere",
	MoodGentle:      "a tender, cozy atmosphere",
	MoodAdventurous: "a bold, adventurous atmosphere",
}

var detailPhrases = map[Detail]string{
	DetailLow:      "simple shapes and minimal background",
	DetailStandard: "a clear scene with a few supporting details",
	DetailHigh:     "a lively scene full of small discoveries",
}

var aspectPhrases = map[Aspect]string{
	AspectSquare:    "balanced square composition",
	AspectLandscape: "wide landscape composition",
	AspectPortrait:  "tall portrait composition",
}

// agePhrase maps a target age to one of four bands (inclusive thresholds).
func agePhrase(age int) string {
	switch {
	case age <= 3:
		return "suitable for toddlers, with large friendly shapes"
	case age <= 6:
		return "suitable for preschoolers, playful and simple"
	case age <= 9:
		return "suitable for young children, with fun details to spot"
	default:
		return "suitable for older children, with expressive depth"
	}
}

// ValidStyle reports whether s names a known style.
func ValidStyle(s Style) bool {
	_, ok := stylePhrases[s]
	return ok
}

// ValidMood reports whether m names a known mood.
func ValidMood(m Mood) bool {
	_, ok := moodPhrases[m]
	return ok
}
