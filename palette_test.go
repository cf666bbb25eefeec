package trianglify

import (
	"errors"
	"image/color"
	"math/rand"
	"sort"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func colorOf(c colorful.Color) (color.RGBA, bool) {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, c.IsValid()
}

func TestPaletteByName(t *testing.T) {
	for _, name := range SchemeNames() {
		p, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(p) != 9 {
			t.Errorf("%s: expected 9 colors, got %d", name, len(p))
		}
		if err := FixedIndex.check(p); err != nil {
			t.Errorf("%s: not usable with fixed index coloring: %v", name, err)
		}
	}

	p := mustPalette(t, "Blues")
	got, _ := colorOf(p[8])
	if want := (color.RGBA{0x08, 0x30, 0x6b, 0xff}); got != want {
		t.Errorf("Blues[8] = %v, want %v", got, want)
	}
}

func TestPaletteByNameUnknown(t *testing.T) {
	_, err := PaletteByName("Rainbow")
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestParsePaletteInvalid(t *testing.T) {
	_, err := ParsePalette("#000000", "not-a-color")
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "palette" {
		t.Fatalf("expected palette config error, got %v", err)
	}
}

func TestSchemeNames(t *testing.T) {
	names := SchemeNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("scheme names are not sorted: %v", names)
	}
	for _, name := range append(AttractiveSchemes, DefaultScheme) {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("scheme %s: %v", name, err)
		}
	}
}

func TestRandomScheme(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[RandomScheme(rnd)] = true
	}
	for name := range seen {
		found := false
		for _, s := range AttractiveSchemes {
			found = found || s == name
		}
		if !found {
			t.Errorf("unexpected scheme %s", name)
		}
	}
	if len(seen) < 2 {
		t.Errorf("expected several schemes, got %v", seen)
	}
}
