package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmarchenko/rockfall/internal/platform/tui"
	"github.com/vmarchenko/rockfall/internal/registry"
	"github.com/vmarchenko/rockfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive cave picker",
	Long: `Open the cave picker: choose a cave and difficulty, view the
scoreboard, play, and return to the picker when the run ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
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

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: runs will not be saved: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close() //nolint:errcheck
		}

		for {
			result, err := tui.RunMenu(store, rt)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}
			if result.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}
			if result.Selection == nil {
				return nil
			}

			rt.Cave = result.Selection.Cave
			rt.Difficulty = result.Selection.Difficulty

			g, err := registry.Create("rockfall")
			if err != nil {
				return err
			}
			if err := tui.Run(g, store, rt); err != nil {
				return err
			}
		}
	},
}
