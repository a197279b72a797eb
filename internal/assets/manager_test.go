package assets

import (
	"testing"

	"convergence/internal/palette"
)

func TestDefaultPalette(t *testing.T) {
	p, err := Palette(DefaultPalette)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if got := p.Sample(0); got != (palette.Color{B: 1}) {
		t.Errorf("first point = %v, want blue", got)
	}
	if got := p.Sample(1); got != (palette.Color{}) {
		t.Errorf("last point = %v, want black", got)
	}
}

func TestEveryPresetLoads(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no presets embedded")
	}
	for _, name := range names {
		if _, err := Palette(name); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
	}
}

func TestUnknownPalette(t *testing.T) {
	if _, err := Palette("no-such-palette"); err == nil {
		t.Error("Palette accepted an unknown name")
	}
}
