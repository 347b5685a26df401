// Package config provides YAML-based configuration loading and
// difficulty management for the rockfall platform.
package config

import (
	"fmt"

	"github.com/vmarchenko/rockfall/internal/cave"
)

// Config contains the full runtime configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Timing TimingConfig `yaml:"timing"`
	Screen ScreenConfig `yaml:"screen"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// GameConfig selects the content to play.
type GameConfig struct {
	Cave       int `yaml:"cave"`       // 1-based cave id
	Difficulty int `yaml:"difficulty"` // 1..5, selects the generation seed
}

// TimingConfig controls the simulation and render cadence.
type TimingConfig struct {
	TickMS    int `yaml:"tick_ms"`    // physics tick period
	FrameRate int `yaml:"frame_rate"` // render frames per second
}

// ScreenConfig sets the playfield viewport size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig names the tile theme to load.
type ThemeConfig struct {
	Name string `yaml:"name"` // built-in theme name
	Path string `yaml:"path"` // explicit file path, overrides Name
}

// Validate checks the configuration and returns the first problem found.
// Called before the first tick so a bad config fails fast instead of
// misrendering mid-game.
func (c Config) Validate() error {
	if c.Game.Cave < 1 || c.Game.Cave > cave.CaveCount() {
		return fmt.Errorf("config: cave %d out of range 1..%d", c.Game.Cave, cave.CaveCount())
	}
	if c.Game.Difficulty < 1 || c.Game.Difficulty > 5 {
		return fmt.Errorf("config: difficulty %d out of range 1..5", c.Game.Difficulty)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.Timing.FrameRate)
	}
	if c.Screen.Width < cave.Width || c.Screen.Height < cave.Height+2 {
		return fmt.Errorf("config: screen %dx%d too small for %dx%d playfield plus HUD",
			c.Screen.Width, c.Screen.Height, cave.Width, cave.Height)
	}
	return nil
}
