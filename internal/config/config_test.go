package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParsesAndValidates(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default does not validate: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rockfall.yaml")
	body := `
game:
  cave: 2
  difficulty: 3
timing:
  tick_ms: 50
  frame_rate: 60
screen:
  width: 80
  height: 30
theme:
  name: classic
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.Cave != 2 || cfg.Game.Difficulty != 3 {
		t.Errorf("game config = %+v", cfg.Game)
	}
	if cfg.Timing.TickMS != 50 {
		t.Errorf("tick_ms = %d", cfg.Timing.TickMS)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"cave too low", func(c *Config) { c.Game.Cave = 0 }, "cave"},
		{"cave too high", func(c *Config) { c.Game.Cave = 99 }, "cave"},
		{"difficulty too low", func(c *Config) { c.Game.Difficulty = 0 }, "difficulty"},
		{"difficulty too high", func(c *Config) { c.Game.Difficulty = 6 }, "difficulty"},
		{"zero tick", func(c *Config) { c.Timing.TickMS = 0 }, "tick_ms"},
		{"zero frame rate", func(c *Config) { c.Timing.FrameRate = 0 }, "frame_rate"},
		{"screen too narrow", func(c *Config) { c.Screen.Width = 20 }, "too small"},
		{"screen too short", func(c *Config) { c.Screen.Height = 10 }, "too small"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"5", 5, false},
		{"normal", 1, false},
		{"harder", 2, false},
		{"hard", 3, false},
		{"expert", 4, false},
		{"extreme", 5, false},
		{"0", 0, true},
		{"6", 0, true},
		{"nightmare", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
