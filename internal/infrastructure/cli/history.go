package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizuki-dev/animeprompt/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				if err := container.HistoryStore.Clear(); err != nil {
					return fmt.Errorf("clear history: %w", err)
				}
				fmt.Println("History cleared.")
				return nil
			}

			exchanges, err := container.HistoryStore.Recent(limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if len(exchanges) == 0 {
				fmt.Println("No exchanges recorded yet.")
				return nil
			}

			fmt.Printf("Recent exchanges (%s):\n\n", container.HistoryStore.Path())
			for _, ex := range exchanges {
				fmt.Printf("[%s] %s\n", ex.Timestamp.Format("2006-01-02 15:04"), ex.Keyword)
				fmt.Printf("  %s\n", truncate(ex.Prompt, 120))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of exchanges to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all recorded exchanges")
	return cmd
}

// truncate shortens s to max runes so multibyte prompts are never cut
// mid-character.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
