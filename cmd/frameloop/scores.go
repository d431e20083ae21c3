package main

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/registry"
	"github.com/vovakirdan/frameloop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified game, or a summary of every
game when no game is given.

Examples:
  frameloop scores
  frameloop scores flappy
  frameloop scores dodge --limit 25
  frameloop scores shooter --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	gameID := args[0]
	mustExist(gameID)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'frameloop play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  |  Games: %s  |  Average: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			humanize.FormatFloat("#,###.#", stats.AvgScore),
		)
	}
}

func printAllStats(store *storage.Store) {
	stats, err := store.AllGamesStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-10s  %-8s  %-10s  %-10s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-8s  %-10s  %-10s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-8s  %-10s  %-10s  %s\n",
			id,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.FormatFloat("#,###.#", s.AvgScore),
			humanize.Time(s.LastPlayed),
		)
	}
}

func title(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}
