// Package assets holds the palette presets shipped inside the binary.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"convergence/internal/palette"
)

// DefaultPalette is the preset used when none is chosen: blue, green, black.
const DefaultPalette = "convergence"

//go:embed palettes/*.json
var projectAssets embed.FS

// presets maps a preset name to its control points as [r, g, b] triples in [0, 1].
type presets map[string][][3]float64

func readPresets() (presets, error) {
	fileData, err := projectAssets.ReadFile("palettes/presets.json")
	if err != nil {
		return nil, fmt.Errorf("read palette presets: %w", err)
	}
	var p presets
	if err := json.Unmarshal(fileData, &p); err != nil {
		return nil, fmt.Errorf("decode palette presets: %w", err)
	}
	return p, nil
}

// Palette returns the named preset.
func Palette(name string) (palette.Palette, error) {
	all, err := readPresets()
	if err != nil {
		return palette.Palette{}, err
	}
	points, ok := all[name]
	if !ok {
		return palette.Palette{}, fmt.Errorf("unknown palette %q (have %v)", name, all.names())
	}

	colors := make([]palette.Color, len(points))
	for i, p := range points {
		colors[i] = palette.Color{R: p[0], G: p[1], B: p[2]}
	}
	pal, err := palette.New(colors...)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("palette %q: %w", name, err)
	}
	return pal, nil
}

// Names lists the available presets in sorted order.
func Names() []string {
	all, err := readPresets()
	if err != nil {
		log.Printf("palette presets: %v", err)
		return nil
	}
	return all.names()
}

func (p presets) names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
