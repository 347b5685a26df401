package config

import (
	_ "embed"
)

//go:embed defaults/rockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file
// is found anywhere in the search path.
func Default() Config {
	return Config{
		Game: GameConfig{
			Cave:       1,
			Difficulty: 1,
		},
		Timing: TimingConfig{
			TickMS:    100,
			FrameRate: 30,
		},
		Screen: ScreenConfig{
			Width:  40,
			Height: 24,
		},
		Theme: ThemeConfig{
			Name: "classic",
		},
	}
}

// DefaultYAML returns the embedded default config, for the CLI's
// config-dump command.
func DefaultYAML() []byte {
	return defaultYAML
}
