// Package theme maps cave objects to terminal glyphs and colors. Themes
// are YAML files; the built-in ones are embedded so the binary works
// without any installed files. A theme is fully validated at load time,
// before the first frame is drawn.
package theme

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/core"
)

//go:embed themes/*.yaml
var builtinFS embed.FS

// Tile is the visual for one object kind. Frames, when present, is the
// animation cycle; the sprite's frame counter indexes into it.
type Tile struct {
	Frames []rune
	Color  core.Color
}

// Theme is a validated, immutable glyph table.
type Theme struct {
	Name  string
	tiles map[string]Tile
}

// tileYAML is the on-disk tile form.
type tileYAML struct {
	Glyph  string `yaml:"glyph"`
	Frames string `yaml:"frames"`
	Color  string `yaml:"color"`
}

type themeYAML struct {
	Name  string              `yaml:"name"`
	Tiles map[string]tileYAML `yaml:"tiles"`
}

// requiredTiles lists every object name the renderer can ask for. A
// theme missing any of these is rejected at load time.
var requiredTiles = func() []string {
	seen := make(map[string]bool)
	for o := cave.Object(0); o <= cave.MaxObject; o++ {
		if cave.Known(o) {
			seen[o.String()] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}()

// Load resolves a theme by explicit path or built-in name. An empty
// name loads "classic". Any structural problem is an error; the game
// never starts with a partial theme.
func Load(name, path string) (*Theme, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case path != "":
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("theme: reading %s: %w", path, err)
		}
	case name == "":
		name = "classic"
		fallthrough
	default:
		data, err = builtinFS.ReadFile("themes/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("theme: unknown built-in theme %q (have %v)", name, BuiltinNames())
		}
	}
	return Parse(data)
}

// Parse decodes and validates a theme document.
func Parse(data []byte) (*Theme, error) {
	var doc themeYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("theme: parsing: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("theme: missing name")
	}

	t := &Theme{Name: doc.Name, tiles: make(map[string]Tile, len(doc.Tiles))}
	for key, ty := range doc.Tiles {
		tile, err := buildTile(ty)
		if err != nil {
			return nil, fmt.Errorf("theme %s: tile %q: %w", doc.Name, key, err)
		}
		t.tiles[key] = tile
	}

	for _, req := range requiredTiles {
		if _, ok := t.tiles[req]; !ok {
			return nil, fmt.Errorf("theme %s: missing tile %q", doc.Name, req)
		}
	}
	return t, nil
}

func buildTile(ty tileYAML) (Tile, error) {
	frames := []rune(ty.Frames)
	if len(frames) == 0 {
		frames = []rune(ty.Glyph)
	}
	if len(frames) == 0 {
		return Tile{}, fmt.Errorf("needs a glyph or frames")
	}
	if ty.Glyph != "" && len([]rune(ty.Glyph)) != 1 {
		return Tile{}, fmt.Errorf("glyph %q must be a single rune", ty.Glyph)
	}
	color, ok := core.ParseColor(ty.Color)
	if !ok {
		return Tile{}, fmt.Errorf("unknown color %q", ty.Color)
	}
	return Tile{Frames: frames, Color: color}, nil
}

// Cell returns the screen cell for an object at the given animation
// frame. Unknown objects render as an inverted question mark so a theme
// gap is visible instead of invisible.
func (t *Theme) Cell(o cave.Object, frame int) core.Cell {
	tile, ok := t.tiles[o.String()]
	if !ok {
		return core.Cell{Rune: '¿', Color: core.ColorRed}
	}
	if frame < 0 {
		frame = 0
	}
	return core.Cell{
		Rune:  tile.Frames[frame%len(tile.Frames)],
		Color: tile.Color,
	}
}

// BuiltinNames lists the embedded themes in sorted order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		names = append(names, name[:len(name)-len(".yaml")])
	}
	sort.Strings(names)
	return names
}
