// rockfall is a terminal rendition of the classic boulder-and-diamond
// cave game. Caves are decoded from compact byte definitions and the
// physics run at a fixed ten ticks per second.
//
// Usage:
//
//	rockfall list              - List the built-in caves
//	rockfall play [cave]       - Play a cave
//	rockfall menu              - Interactive cave picker
//	rockfall decode <cave>     - Dump a decoded cave as text
//	rockfall scores [cave]     - Show best runs
//	rockfall serve             - Start SSH server for remote play
//	rockfall config            - Print the default configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.rockfall, ./configs)
//	--db <path>      - Runs database (default: ~/.rockfall/runs.db)
//	--theme <name>   - Tile theme (built-in name or file path)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/config"
	"github.com/vmarchenko/rockfall/internal/core"
	"github.com/vmarchenko/rockfall/internal/game"
	"github.com/vmarchenko/rockfall/internal/theme"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagTheme   string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockfall",
	Short: "Rockfall - dig for diamonds in your terminal",
	Long: `Rockfall is a terminal cave-mining game: guide the player through
dirt, drop boulders on fireflies, collect diamonds and reach the exit
before the clock runs out.

Available commands:
  list     - Show the built-in caves
  play     - Play a cave directly
  menu     - Interactive cave picker
  decode   - Dump a decoded cave as text
  scores   - View best runs
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  rockfall list
  rockfall play 1
  rockfall play 3 --difficulty expert
  rockfall menu
  rockfall serve --ssh :2222
  rockfall scores 1`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rockfall/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Tile theme: built-in name or file path")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger shared with the game core.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockfall",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads and validates the YAML configuration.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// wireTheme resolves the tile theme from flags and config and injects
// it, together with the logger, into the game. Fails before the first
// frame when the theme is broken.
func wireTheme(cfg config.Config) error {
	name := cfg.Theme.Name
	path := cfg.Theme.Path
	if flagTheme != "" {
		// A flag value containing a path separator or .yaml suffix is
		// treated as a file, otherwise as a built-in name.
		if looksLikePath(flagTheme) {
			name, path = "", flagTheme
		} else {
			name, path = flagTheme, ""
		}
	}

	th, err := theme.Load(name, path)
	if err != nil {
		return err
	}
	game.SetTheme(th)
	game.SetLogger(newLogger())
	return nil
}

func looksLikePath(s string) bool {
	for _, r := range s {
		if r == '/' || r == '\\' || r == '.' {
			return true
		}
	}
	return false
}

// runtimeFromConfig builds the per-session runtime config, sizing the
// screen from the terminal.
func runtimeFromConfig(cfg config.Config, termW, termH int) core.RuntimeConfig {
	w, h := cfg.Screen.Width, cfg.Screen.Height
	if termW > w {
		w = termW
	}
	if termH > h {
		h = termH
	}
	return core.RuntimeConfig{
		ScreenW:    w,
		ScreenH:    h,
		FrameRate:  cfg.Timing.FrameRate,
		TickMS:     cfg.Timing.TickMS,
		Cave:       cfg.Game.Cave,
		Difficulty: cfg.Game.Difficulty,
	}
}
