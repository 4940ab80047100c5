package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harunaka/kodomo-diary/internal/prompt"
)

func (a *App) promptsCmd() *cobra.Command {
	var (
		templateName string
		style        string
		mood         string
		age          int
		detail       string
		aspect       string
		ab           bool
		maxVariants  int
	)

	cmd := &cobra.Command{
		Use:   "prompts:test <text>",
		Short: "Preview the prompt a diary text would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := promptOptions(args[0], style, mood, age, detail, aspect)
			if err != nil {
				return err
			}
			if !a.builder.Validate(opts) {
				return fmt.Errorf("text must be non-empty and age within 1-18")
			}

			if !ab {
				tpl := prompt.Lookup(templateName)
				fmt.Printf("Template: %s (%s)\n", tpl.Name, tpl.Description)
				fmt.Printf("Defaults: style=%s mood=%s\n", tpl.DefaultStyle, tpl.DefaultMood)
				fmt.Println()
				fmt.Println(a.builder.Build(opts, templateName))
				return nil
			}

			builder := a.builder
			if maxVariants > 0 {
				builder = prompt.NewBuilder(maxVariants)
			}
			exp := builder.Variants(opts, prompt.DefaultVariations(), templateName)
			fmt.Printf("Experiment: %s\n", exp.ID)
			fmt.Printf("Created:    %s\n", exp.CreatedAt.Format(time.RFC3339))
			for _, v := range exp.Variants {
				fmt.Println()
				fmt.Printf("[%s]\n", v.Label)
				fmt.Println(v.Prompt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateName, "template", "", "prompt template name")
	cmd.Flags().StringVar(&style, "style", "", "illustration style")
	cmd.Flags().StringVar(&mood, "mood", "", "emotional tone")
	cmd.Flags().IntVar(&age, "age", 0, "target age (1-18)")
	cmd.Flags().StringVar(&detail, "detail", "", "detail level (low|standard|high)")
	cmd.Flags().StringVar(&aspect, "aspect", "", "aspect ratio (square|landscape|portrait)")
	cmd.Flags().BoolVar(&ab, "ab", false, "print labeled A/B prompt variations")
	cmd.Flags().IntVar(&maxVariants, "max-variants", 0, "cap on A/B variants (0 uses KODOMO_MAX_VARIANTS or the default)")
	return cmd
}
