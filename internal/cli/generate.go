package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harunaka/kodomo-diary/internal/artifact"
	"github.com/harunaka/kodomo-diary/internal/diary"
	"github.com/harunaka/kodomo-diary/internal/imagegen"
	"github.com/harunaka/kodomo-diary/internal/prompt"
	"github.com/harunaka/kodomo-diary/internal/remote"
)

func (a *App) generateCmd() *cobra.Command {
	var (
		style        string
		mood         string
		age          int
		detail       string
		aspect       string
		templateName string
	)

	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Generate an illustration for a diary text and save the entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.OpenAIKey == "" {
				return errors.New("OPENAI_API_KEY is not set")
			}

			opts, err := promptOptions(args[0], style, mood, age, detail, aspect)
			if err != nil {
				return err
			}
			return a.generateAndSave(cmd.Context(), opts, templateName)
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "illustration style")
	cmd.Flags().StringVar(&mood, "mood", "", "emotional tone")
	cmd.Flags().IntVar(&age, "age", 0, "target age (1-18)")
	cmd.Flags().StringVar(&detail, "detail", "", "detail level (low|standard|high)")
	cmd.Flags().StringVar(&aspect, "aspect", "", "aspect ratio (square|landscape|portrait)")
	cmd.Flags().StringVar(&templateName, "template", "", "prompt template name")
	return cmd
}

// generateAndSave builds the prompt, runs the generation through the retry
// harness and persists the resulting entry.
func (a *App) generateAndSave(ctx context.Context, opts prompt.Options, templateName string) error {
	if !a.builder.Validate(opts) {
		return fmt.Errorf("%w: text must be non-empty and age within 1-18", diary.ErrValidation)
	}
	p := a.builder.Build(opts, templateName)

	harness := remote.NewHarness(remote.Config{
		Model:        imagegen.Model,
		MaxRetries:   a.cfg.MaxRetries,
		InitialDelay: a.cfg.InitialDelay,
		Timeout:      a.cfg.Timeout,
	}, a.log)

	uploader, err := artifact.NewS3ClientFromEnv(ctx)
	if err != nil {
		a.log.Warnw("artifact store disabled", "err", err)
		uploader = nil
	}

	svc := imagegen.NewService(
		imagegen.NewOpenAIClient(a.cfg.OpenAIKey, a.cfg.ImageDir, a.cfg.Timeout),
		harness,
		uploader,
		a.log,
	)

	res, err := svc.Generate(ctx, p)
	if err != nil {
		return err
	}

	entry, err := a.diary.Save(ctx, diary.NewEntry{
		Date:      time.Now().Format("2006-01-02"),
		AudioText: opts.UserInput,
		ImagePath: res.ImagePath,
		Prompt:    p,
		Style:     string(opts.Style),
		Mood:      string(opts.Mood),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Image saved: %s\n", res.ImagePath)
	if res.RemoteURL != "" {
		fmt.Printf("Uploaded to: %s\n", res.RemoteURL)
	}
	fmt.Printf("Model: %s\n", res.Model)
	fmt.Printf("Generation took %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Entry saved: %s\n", entry.ID)
	return nil
}
