package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/core"
)

func TestBuiltinThemesLoad(t *testing.T) {
	names := BuiltinNames()
	if len(names) == 0 {
		t.Fatal("no built-in themes embedded")
	}
	for _, name := range names {
		th, err := Load(name, "")
		if err != nil {
			t.Errorf("Load(%q) error: %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("theme %q reports name %q", name, th.Name)
		}
	}
}

func TestLoadDefaultsToClassic(t *testing.T) {
	th, err := Load("", "")
	if err != nil {
		t.Fatalf("Load with empty name: %v", err)
	}
	if th.Name != "classic" {
		t.Errorf("default theme = %q, want classic", th.Name)
	}
}

func TestLoadUnknownBuiltinFails(t *testing.T) {
	if _, err := Load("vaporwave", ""); err == nil {
		t.Fatal("expected error for unknown built-in theme")
	}
}

func TestThemeCoversEveryKnownObject(t *testing.T) {
	th, err := Load("classic", "")
	if err != nil {
		t.Fatal(err)
	}
	for o := cave.Object(0); o <= cave.MaxObject; o++ {
		if !cave.Known(o) {
			continue
		}
		c := th.Cell(o, 0)
		if c.Rune == '¿' {
			t.Errorf("object %v has no tile", o)
		}
	}
}

func TestCellCyclesAnimationFrames(t *testing.T) {
	th, err := Load("classic", "")
	if err != nil {
		t.Fatal(err)
	}
	caps, _ := cave.Caps(cave.ObjDiamond)
	seen := make(map[rune]bool)
	for f := 0; f < caps.FrameCount; f++ {
		seen[th.Cell(cave.ObjDiamond, f).Rune] = true
	}
	if len(seen) < 2 {
		t.Errorf("diamond animation shows %d distinct glyphs, want at least 2", len(seen))
	}
	// Frame counter beyond the cycle wraps instead of panicking.
	if got, first := th.Cell(cave.ObjDiamond, 100), th.Cell(cave.ObjDiamond, 100%8); got != first {
		t.Errorf("frame wrap mismatch: %+v vs %+v", got, first)
	}
}

func TestUnknownObjectRendersPlaceholder(t *testing.T) {
	th, err := Load("classic", "")
	if err != nil {
		t.Fatal(err)
	}
	c := th.Cell(cave.Object(0x3F), 0)
	if c.Rune != '¿' || c.Color != core.ColorRed {
		t.Errorf("placeholder cell = %+v", c)
	}
}

func TestParseRejectsIncompleteTheme(t *testing.T) {
	_, err := Parse([]byte("name: broken\ntiles:\n  dirt: {glyph: \".\", color: yellow}\n"))
	if err == nil {
		t.Fatal("expected error for theme missing tiles")
	}
	if !strings.Contains(err.Error(), "missing tile") {
		t.Errorf("error = %v", err)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse([]byte("name: bad\ntiles:\n  dirt: {glyph: \".\", color: plaid}\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown color") {
		t.Errorf("error = %v", err)
	}
}

func TestParseRejectsMultiRuneGlyph(t *testing.T) {
	_, err := Parse([]byte("name: bad\ntiles:\n  dirt: {glyph: \"ab\", color: yellow}\n"))
	if err == nil || !strings.Contains(err.Error(), "single rune") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadFromFilePath(t *testing.T) {
	src, err := builtinFS.ReadFile("themes/ascii.yaml")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load from path: %v", err)
	}
	if th.Name != "ascii" {
		t.Errorf("theme name = %q", th.Name)
	}
}
