package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/harunaka/kodomo-diary/internal/diary"
)

func (a *App) listCmd() *cobra.Command {
	var (
		search string
		date   string
		style  string
		mood   string
		sortBy string
		order  string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List diary entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := diary.ListOptions{
				Filter: diary.Filter{
					Search: search,
					Style:  style,
					Mood:   mood,
				},
				Sort:  diary.Sort{Field: sortBy, Order: order},
				Limit: limit,
			}
			if date != "" {
				opts.Filter.StartDate = date
				opts.Filter.EndDate = date
			}

			entries, err := a.diary.List(ctx, opts)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No diary entries found.")
			} else {
				for _, e := range entries {
					printEntry(e)
				}
			}

			stats, err := a.diary.Stats(ctx)
			if err != nil {
				return err
			}
			printStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "text to search in entries and prompts")
	cmd.Flags().StringVar(&date, "date", "", "exact date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&style, "style", "", "filter by style")
	cmd.Flags().StringVar(&mood, "mood", "", "filter by mood")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field (date|createdAt|updatedAt)")
	cmd.Flags().StringVar(&order, "order", "", "sort order (asc|desc)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries")
	return cmd
}

func printEntry(e diary.Entry) {
	fmt.Printf("%s  [%s]\n", e.Date, e.ID)
	fmt.Printf("  %s\n", snippet(e.AudioText, 60))

	tags := []string{}
	if e.Style != "" {
		tags = append(tags, "style="+e.Style)
	}
	if e.Mood != "" {
		tags = append(tags, "mood="+e.Mood)
	}
	if len(tags) > 0 {
		fmt.Printf("  %s\n", strings.Join(tags, " "))
	}

	fmt.Printf("  image: %s\n", e.ImagePath)
	if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
		fmt.Printf("  created %s\n", humanize.Time(t))
	}
	fmt.Println()
}

func printStats(s *diary.Stats) {
	fmt.Printf("Total entries: %d\n", s.TotalEntries)
	if s.DateRange != nil {
		fmt.Printf("Date range: %s .. %s\n", s.DateRange.First, s.DateRange.Last)
	}
	if len(s.StyleCounts) > 0 {
		parts := make([]string, 0, len(s.StyleCounts))
		for style, n := range s.StyleCounts {
			parts = append(parts, fmt.Sprintf("%s:%d", style, n))
		}
		fmt.Printf("Styles: %s\n", strings.Join(parts, " "))
	}
}
