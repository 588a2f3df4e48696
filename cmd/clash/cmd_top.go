package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeclash/cmd/clash/ui"
	"codeclash/internal/arena"
)

var topLimit int

// topCmd prints the leaderboard to stdout and exits.
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the current leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runTop,
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx, cancel := shotContext()
	defer cancel()

	entries, err := newClient().Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("fetching leaderboard: %w", err)
	}

	fmt.Print(renderStandings(entries, topLimit))
	return nil
}

// renderStandings builds the leaderboard table shared by top and submit.
// Rank is display order as returned by the service; the client never
// re-sorts.
func renderStandings(entries []arena.LeaderboardEntry, limit int) string {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	table := ui.NewScoreTable("Leaderboard", "Rank", "User", "Score").AlignRight(0, 2)
	for i, entry := range entries {
		table.AddRow(fmt.Sprintf("%d", i+1), entry.Username, fmt.Sprintf("%.1f", entry.Score))
	}
	return table.View(ui.DefaultStyles())
}

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", 0, "Show at most N entries (0 = all)")
	rootCmd.AddCommand(topCmd)
}
