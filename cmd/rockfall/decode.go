package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/config"
	"github.com/vmarchenko/rockfall/internal/theme"
)

var decodeDifficulty string

var decodeCmd = &cobra.Command{
	Use:   "decode <cave>",
	Short: "Dump a decoded cave as text",
	Long: `Decode a cave definition and print the resulting grid with the
ascii theme glyphs, plus the cave header values. Useful for inspecting
what a difficulty level changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 || id > cave.CaveCount() {
			return fmt.Errorf("unknown cave %q: expected 1-%d", args[0], cave.CaveCount())
		}

		level := 1
		if decodeDifficulty != "" {
			level, err = config.ParseDifficulty(decodeDifficulty)
			if err != nil {
				return err
			}
		}

		d, err := cave.Decode(id, level)
		if err != nil {
			return err
		}
		th, err := theme.Load("ascii", "")
		if err != nil {
			return err
		}

		fmt.Printf("Cave %d: %s\n", d.Info.ID, d.Info.Name)
		fmt.Printf("Difficulty %d: %d diamonds required, %d points each, %ds\n\n",
			d.Info.Difficulty, d.Info.DiamondsRequired, d.Info.DiamondValue, d.Info.TimeSeconds)

		var b strings.Builder
		for row := 0; row < d.Grid.H; row++ {
			for col := 0; col < d.Grid.W; col++ {
				b.WriteRune(th.Cell(d.Grid.At(col, row), 0).Rune)
			}
			b.WriteByte('\n')
		}
		fmt.Print(b.String())

		stats := d.Grid.Statistics()
		objects := make([]cave.Object, 0, len(stats))
		for o := range stats {
			objects = append(objects, o)
		}
		sort.Slice(objects, func(i, j int) bool { return objects[i] < objects[j] })

		fmt.Println()
		for _, o := range objects {
			fmt.Printf("  %-18s %d\n", o.String(), stats[o])
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeDifficulty, "difficulty", "", "Difficulty level 1-5 or preset name")
}
