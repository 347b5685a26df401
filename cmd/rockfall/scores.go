package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [cave]",
	Short: "Show best runs",
	Long: `Without an argument, print per-cave statistics. With a cave number,
print the top ten runs for that cave.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open runs database: %w", err)
		}
		defer store.Close() //nolint:errcheck

		if len(args) == 0 {
			return printAllStats(store)
		}

		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 || id > cave.CaveCount() {
			return fmt.Errorf("unknown cave %q: expected 1-%d", args[0], cave.CaveCount())
		}
		return printTopRuns(store, id)
	},
}

func printAllStats(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet. Play with: rockfall play")
		return nil
	}

	caves := make([]int, 0, len(stats))
	for id := range stats {
		caves = append(caves, id)
	}
	sort.Ints(caves)

	fmt.Printf("%-4s %-16s %-6s %-7s %-10s %-10s %s\n",
		"ID", "NAME", "RUNS", "CLEARS", "HIGH", "AVG", "BEST TIME")
	for _, id := range caves {
		s := stats[id]
		best := "-"
		if s.BestTicks > 0 {
			best = fmt.Sprintf("%ds", s.BestTicks/cave.TicksPerSecond)
		}
		fmt.Printf("%-4d %-16s %-6d %-7d %-10d %-10.0f %s\n",
			id, cave.CaveName(id), s.Runs, s.Clears, s.HighScore, s.AvgScore, best)
	}
	return nil
}

func printTopRuns(store *storage.Store, caveID int) error {
	runs, err := store.TopRuns(caveID, 10)
	if err != nil {
		return err
	}
	fmt.Printf("Top runs for cave %d: %s\n\n", caveID, cave.CaveName(caveID))
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-5s %-8s %-9s %-6s %-8s %s\n",
		"RANK", "SCORE", "DIAMONDS", "TIME", "CLEARED", "DATE")
	for i, r := range runs {
		cleared := ""
		if r.Cleared {
			cleared = "yes"
		}
		fmt.Printf("%-5d %-8d %-9d %-6s %-8s %s\n",
			i+1, r.Score, r.Diamonds,
			fmt.Sprintf("%ds", r.Ticks/cave.TicksPerSecond),
			cleared, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
