package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/config"
	"github.com/vmarchenko/rockfall/internal/platform/tui"
	"github.com/vmarchenko/rockfall/internal/registry"
	"github.com/vmarchenko/rockfall/internal/storage"
)

var (
	flagDifficulty string
	flagTickMS     int
)

var playCmd = &cobra.Command{
	Use:   "play [cave]",
	Short: "Play a cave",
	Long: `Play a cave directly, skipping the menu.

The cave argument is a number from 1 to ` + strconv.Itoa(cave.CaveCount()) + `; when omitted the
configured default is used. Difficulty is a level 1-5 or a preset name
(normal, harder, hard, expert, extreme).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > cave.CaveCount() {
				return fmt.Errorf("unknown cave %q: expected 1-%d", args[0], cave.CaveCount())
			}
			cfg.Game.Cave = n
		}
		if flagDifficulty != "" {
			level, err := config.ParseDifficulty(flagDifficulty)
			if err != nil {
				return err
			}
			cfg.Game.Difficulty = level
		}
		if flagTickMS > 0 {
			cfg.Timing.TickMS = flagTickMS
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := wireTheme(cfg); err != nil {
			return err
		}

		termW, termH, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			termW, termH = 80, 24
		}
		rt := runtimeFromConfig(cfg, termW, termH)

		g, err := registry.Create("rockfall")
		if err != nil {
			return err
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: runs will not be saved: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close() //nolint:errcheck
		}

		return tui.Run(g, store, rt)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty level 1-5 or preset name")
	playCmd.Flags().IntVar(&flagTickMS, "tick-ms", 0, "Physics tick interval override in milliseconds")
}
