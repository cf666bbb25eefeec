package trianglify

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Coloring selects how a triangle color is picked from the palette.
type Coloring int

const (
	// FixedIndex blends palette[1] into palette[7] along the diagonal,
	// whatever the palette length. The palette needs at least 8 entries.
	FixedIndex Coloring = iota
	// Positional blends the two palette entries surrounding the diagonal
	// position, so the whole palette is swept from corner to corner.
	Positional
)

const (
	fixedFirst  = 1
	fixedSecond = 7
)

func (c Coloring) String() string {
	switch c {
	case FixedIndex:
		return "fixed"
	case Positional:
		return "positional"
	}
	return fmt.Sprintf("Coloring(%d)", int(c))
}

func (c Coloring) check(p Palette) error {
	switch c {
	case FixedIndex:
		if len(p) == 0 {
			return newConfigError("palette", "must not be empty")
		}
		if len(p) <= fixedSecond {
			return newConfigError("palette", fmt.Sprintf("needs at least %d colors, got %d", fixedSecond+1, len(p)))
		}
	case Positional:
		if len(p) == 0 {
			return newConfigError("palette", "must not be empty")
		}
	default:
		return newConfigError("coloring", fmt.Sprintf("unknown mode %d", int(c)))
	}
	return nil
}

// resolve mixes the palette at the given weight. The palette is assumed
// to have passed check.
func (c Coloring) resolve(p Palette, weight float64) color.RGBA {
	weight = Clamp(weight, 0, 1)

	var first, second colorful.Color
	switch c {
	case Positional:
		f := float64(len(p)-1) * weight
		lo, hi := math.Floor(f), math.Ceil(f)
		first, second = p[int(lo)], p[int(hi)]
		weight = f - lo
	default:
		first, second = p[fixedFirst], p[fixedSecond]
	}
	return Mix(first, second, weight)
}

// Mix blends a into b in RGB space. A zero weight yields a, one yields b.
func Mix(a, b colorful.Color, weight float64) color.RGBA {
	r, g, bl := a.BlendRgb(b, weight).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}
