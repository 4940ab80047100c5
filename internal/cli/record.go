package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harunaka/kodomo-diary/internal/remote"
	"github.com/harunaka/kodomo-diary/internal/speech"
)

func (a *App) recordCmd() *cobra.Command {
	var (
		durationSec int
		style       string
		mood        string
		age         int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a spoken diary entry, transcribe it and illustrate it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DeepgramKey == "" {
				return errors.New("DEEPGRAM_API_KEY is not set")
			}

			harness := remote.NewHarness(remote.Config{
				Model:        "nova-2",
				MaxRetries:   a.cfg.MaxRetries,
				InitialDelay: a.cfg.InitialDelay,
				Timeout:      a.cfg.Timeout,
			}, a.log)
			svc := speech.NewService(
				speech.NewDeepgramClient(a.cfg.DeepgramKey, a.cfg.Timeout),
				speech.NewShellRecorder(a.cfg.AudioDir, a.log),
				harness,
				a.log,
			)

			ctx := cmd.Context()
			fmt.Printf("Recording for %d seconds... speak now!\n", durationSec)
			audioPath, err := svc.Capture(ctx, time.Duration(durationSec)*time.Second)
			if err != nil {
				return err
			}
			if secs, err := speech.AudioDuration(audioPath); err == nil {
				fmt.Printf("Captured %.1f seconds of audio.\n", secs)
			}

			text, err := svc.Transcribe(ctx, audioPath)
			if err != nil {
				return err
			}

			fmt.Println("Transcribed text:")
			fmt.Println("  " + text)
			text = confirmText(cmd.InOrStdin(), text)

			if a.cfg.OpenAIKey == "" {
				fmt.Println("OPENAI_API_KEY is not set; skipping the illustration, entry not saved.")
				fmt.Println("Final text: " + text)
				return nil
			}

			opts, err := promptOptions(text, style, mood, age, "", "")
			if err != nil {
				return err
			}
			return a.generateAndSave(ctx, opts, "")
		},
	}

	cmd.Flags().IntVar(&durationSec, "duration", 10, "recording duration in seconds")
	cmd.Flags().StringVar(&style, "style", "", "illustration style")
	cmd.Flags().StringVar(&mood, "mood", "", "emotional tone")
	cmd.Flags().IntVar(&age, "age", 0, "target age (1-18)")
	return cmd
}

// confirmText lets the user keep or correct the transcription; an empty
// line keeps the original.
func confirmText(in io.Reader, original string) string {
	fmt.Print("Press Enter to keep it, or type the corrected text: ")
	sc := bufio.NewScanner(in)
	if sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line
		}
	}
	return original
}
