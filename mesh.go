package trianglify

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"
)

// DefaultVariation is the jitter scale set by NewGenerator and NewView.
const DefaultVariation = 0.65

// MaxCells bounds the number of grid cells of a single mesh.
const MaxCells = 1 << 20

// Point is a jittered grid intersection in area-local coordinates.
type Point struct {
	X, Y float64
}

// Triangle holds the three corners of a mesh triangle and its resolved color.
type Triangle struct {
	Points [3]Point
	Color  color.RGBA
	// Weight is the position along the top-left to bottom-right diagonal
	// used as the color mix weight, always in [0, 1].
	Weight float64
}

// Centroid returns the arithmetic mean of the triangle corners.
func (t Triangle) Centroid() Point {
	p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]
	return Point{
		X: (p0.X + p1.X + p2.X) / 3,
		Y: (p0.Y + p1.Y + p2.Y) / 3,
	}
}

// Mesh is the result of one generation pass.
type Mesh struct {
	Width, Height float64
	// Rows and Cols are the number of cells along the x and y axis.
	Rows, Cols int
	// Points holds the (Rows+1) x (Cols+1) jittered grid, indexed [r][c].
	Points    [][]Point
	Triangles []Triangle
}

// Source is the randomness used to jitter points and flip cell diagonals.
// *rand.Rand satisfies it. A Source is not expected to be safe for concurrent use.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Generator : type with mesh generation options
type Generator struct {
	// Variation scales the jitter of every point. It is clamped to [0, 1];
	// zero leaves every point on the ideal grid.
	Variation float64
	Coloring  Coloring
	// Rand is the randomness source. When nil every call draws from its own
	// time seeded source, which makes concurrent calls safe.
	Rand Source
}

var defaultGenerator = NewGenerator(nil)

// NewGenerator returns a generator with DefaultVariation drawing from src.
// A nil src gets a time seeded source per call.
func NewGenerator(src Source) *Generator {
	return &Generator{Variation: DefaultVariation, Rand: src}
}

// Generate builds a mesh using a generator with default options.
func Generate(width, height, cellWidth, cellHeight, jitter float64, palette Palette) (*Mesh, error) {
	return defaultGenerator.Generate(width, height, cellWidth, cellHeight, jitter, palette)
}

// Generate tessellates the width x height area into jittered triangles,
// two per grid cell, and colors them from the palette.
func (g *Generator) Generate(width, height, cellWidth, cellHeight, jitter float64, palette Palette) (*Mesh, error) {
	if err := g.validate(width, height, cellWidth, cellHeight, jitter, palette); err != nil {
		return nil, err
	}

	rnd := g.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	variation := Clamp(g.Variation, 0, 1)

	numRows, numCols := gridSize(width, height, cellWidth, cellHeight)
	xSpacing := width / float64(numRows)
	ySpacing := height / float64(numCols)

	m := &Mesh{
		Width:     width,
		Height:    height,
		Rows:      numRows,
		Cols:      numCols,
		Points:    make([][]Point, 0, numRows+1),
		Triangles: make([]Triangle, 0, 2*numRows*numCols),
	}

	for r := 0; r <= numRows; r++ {
		row := make([]Point, 0, numCols+1)
		for c := 0; c <= numCols; c++ {
			ideal := Point{X: float64(r) * xSpacing, Y: float64(c) * ySpacing}
			angle := math.Mod(rnd.Float64()*variation*2*math.Pi, 2*math.Pi)
			p := Point{
				X: ideal.X + math.Cos(angle)*variation*rnd.Float64()*jitter,
				Y: ideal.Y + math.Sin(angle)*variation*rnd.Float64()*jitter,
			}

			// Outer points stay on the area edges.
			if r == 0 || r == numRows {
				p.X = ideal.X
			}
			if c == 0 || c == numCols {
				p.Y = ideal.Y
			}

			if r > 0 && c > 0 {
				prev := m.Points[r-1]
				tl, tr := prev[c-1], prev[c]
				bl, br := row[c-1], p

				var top, bottom [3]Point
				if rnd.Intn(2) == 0 {
					top = [3]Point{tl, tr, bl}
					bottom = [3]Point{tr, bl, br}
				} else {
					top = [3]Point{tl, tr, br}
					bottom = [3]Point{tl, bl, br}
				}
				m.Triangles = append(m.Triangles,
					m.newTriangle(top, palette, g.Coloring),
					m.newTriangle(bottom, palette, g.Coloring),
				)
			}
			row = append(row, p)
		}
		m.Points = append(m.Points, row)
	}
	return m, nil
}

func (m *Mesh) newTriangle(points [3]Point, palette Palette, coloring Coloring) Triangle {
	t := Triangle{Points: points}
	center := t.Centroid()
	t.Weight = AxisPercent(center, m.Width, m.Height)
	t.Color = coloring.resolve(palette, t.Weight)
	return t
}

// AxisPercent returns how far the point sits along the top-left to
// bottom-right diagonal of a width x height area, clamped to [0, 1].
func AxisPercent(p Point, width, height float64) float64 {
	v := 0.5*(p.X/width) + 0.5*(p.Y/height)
	return Clamp(v, 0, 1)
}

func (g *Generator) validate(width, height, cellWidth, cellHeight, jitter float64, palette Palette) error {
	dims := []struct {
		field string
		value float64
	}{
		{"width", width},
		{"height", height},
		{"cellWidth", cellWidth},
		{"cellHeight", cellHeight},
	}
	for _, d := range dims {
		if !isFinite(d.value) || d.value <= 0 {
			return newConfigError(d.field, "must be a positive finite number")
		}
	}
	if !isFinite(jitter) || jitter < 0 {
		return newConfigError("jitter", "must be a non-negative finite number")
	}
	rows, cols := gridSize(width, height, cellWidth, cellHeight)
	if rows == 0 || cols == 0 {
		return newConfigError("grid", fmt.Sprintf("more than %d cells", MaxCells))
	}
	if math.IsNaN(g.Variation) {
		return newConfigError("variation", "must be a number")
	}
	return g.Coloring.check(palette)
}

// gridSize returns the number of cells along each axis, at least one.
// Grids above MaxCells cells report zero for both.
func gridSize(width, height, cellWidth, cellHeight float64) (int, int) {
	rows := Max(1, math.Floor(width/cellWidth))
	cols := Max(1, math.Floor(height/cellHeight))
	if !isFinite(rows) || !isFinite(cols) || rows*cols > MaxCells {
		return 0, 0
	}
	return int(rows), int(cols)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
