package trianglify

import (
	"io"
	"math/rand"
	"sync"
)

// View keeps a mesh in sync with the size of the area it decorates.
// Every layout or configuration change regenerates the whole mesh; a
// failed regeneration leaves the previous mesh in place.
type View struct {
	mu  sync.Mutex
	cfg viewConfig

	width, height float64
	mesh          *Mesh
}

type viewConfig struct {
	cellWidth, cellHeight float64
	jitter                float64
	palette               Palette
	gen                   Generator
}

// NewView returns a view with 50x50 cells, a jitter of 25 and the
// default scheme. The seed drives every random draw of the view.
func NewView(seed int64) *View {
	palette, err := PaletteByName(DefaultScheme)
	if err != nil {
		panic(err)
	}
	return &View{cfg: viewConfig{
		cellWidth:  50,
		cellHeight: 50,
		jitter:     25,
		palette:    palette,
		gen: Generator{
			Variation: DefaultVariation,
			Rand:      rand.New(rand.NewSource(seed)),
		},
	}}
}

// Layout sets the area size and regenerates the mesh.
func (v *View) Layout(width, height float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	c := v.cfg
	m, err := c.gen.Generate(width, height, c.cellWidth, c.cellHeight, c.jitter, c.palette)
	if err != nil {
		return err
	}
	v.width, v.height = width, height
	v.mesh = m
	return nil
}

// SetCellSize changes the target cell size.
func (v *View) SetCellSize(width, height float64) error {
	return v.update(func(c *viewConfig) {
		c.cellWidth, c.cellHeight = width, height
	})
}

// SetJitter changes the maximum point displacement.
func (v *View) SetJitter(jitter float64) error {
	return v.update(func(c *viewConfig) {
		c.jitter = jitter
	})
}

// SetVariation changes the jitter scale, clamped to [0, 1].
func (v *View) SetVariation(variation float64) error {
	return v.update(func(c *viewConfig) {
		c.gen.Variation = Clamp(variation, 0, 1)
	})
}

// SetColoring changes how triangle colors are picked.
func (v *View) SetColoring(coloring Coloring) error {
	return v.update(func(c *viewConfig) {
		c.gen.Coloring = coloring
	})
}

// SetPalette replaces the palette.
func (v *View) SetPalette(p Palette) error {
	return v.update(func(c *viewConfig) {
		c.palette = p
	})
}

// SetColorScheme replaces the palette with the named scheme.
func (v *View) SetColorScheme(name string) error {
	p, err := PaletteByName(name)
	if err != nil {
		return err
	}
	return v.SetPalette(p)
}

// update applies fn to a copy of the configuration and commits it only if
// the mesh can be regenerated with it. Before the first layout the
// configuration is validated against a single cell.
func (v *View) update(fn func(c *viewConfig)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := v.cfg
	fn(&next)

	if v.mesh == nil {
		if err := next.gen.validate(next.cellWidth, next.cellHeight, next.cellWidth, next.cellHeight, next.jitter, next.palette); err != nil {
			return err
		}
		v.cfg = next
		return nil
	}

	m, err := next.gen.Generate(v.width, v.height, next.cellWidth, next.cellHeight, next.jitter, next.palette)
	if err != nil {
		return err
	}
	v.cfg = next
	v.mesh = m
	return nil
}

// Mesh returns the current mesh, nil before the first layout.
func (v *View) Mesh() *Mesh {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mesh
}

// Render draws the current mesh.
func (v *View) Render(r Renderer, w io.Writer) error {
	m := v.Mesh()
	if m == nil {
		return newConfigError("mesh", "view has not been laid out")
	}
	return r.Render(w, m)
}
