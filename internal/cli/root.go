package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harunaka/kodomo-diary/internal/config"
	"github.com/harunaka/kodomo-diary/internal/diary"
	"github.com/harunaka/kodomo-diary/internal/prompt"
)

// App wires the diary services behind the CLI commands.
type App struct {
	cfg     config.Config
	log     *zap.SugaredLogger
	diary   diary.Service
	builder *prompt.Builder
}

func NewApp(cfg config.Config, log *zap.SugaredLogger) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		diary:   diary.NewService(diary.NewFileRepo(cfg.DiaryFile)),
		builder: prompt.NewBuilder(cfg.MaxVariants),
	}
}

func (a *App) Execute() error {
	root := &cobra.Command{
		Use:           "kodomo-diary",
		Short:         "A voice diary with illustrations for children",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.recordCmd(),
		a.generateCmd(),
		a.listCmd(),
		a.deleteCmd(),
		a.promptsCmd(),
		versionCmd(),
	)
	return root.Execute()
}

// promptOptions assembles and checks the shared style/mood/age/detail/aspect
// flags against their closed sets.
func promptOptions(text, style, mood string, age int, detail, aspect string) (prompt.Options, error) {
	opts := prompt.Options{
		UserInput: text,
		Style:     prompt.Style(style),
		Mood:      prompt.Mood(mood),
		Age:       age,
		Detail:    prompt.Detail(detail),
		Aspect:    prompt.Aspect(aspect),
	}
	if style != "" && !prompt.ValidStyle(opts.Style) {
		return opts, fmt.Errorf("%w: unknown style %q", diary.ErrValidation, style)
	}
	if mood != "" && !prompt.ValidMood(opts.Mood) {
		return opts, fmt.Errorf("%w: unknown mood %q", diary.ErrValidation, mood)
	}
	return opts, nil
}

func snippet(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
