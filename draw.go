package trianglify

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
)

const (
	WithoutWireframe = iota
	WithWireframe
	WireframeOnly
)

// Renderer draws every triangle of a mesh to w.
type Renderer interface {
	Render(w io.Writer, m *Mesh) error
}

var (
	_ Renderer = (*Image)(nil)
	_ Renderer = (*SVG)(nil)
)

// Image renders a mesh as a PNG raster.
type Image struct {
	// StrokeWidth is the width of the outline drawn around each triangle
	// in its own color. It hides the seams between neighbours.
	StrokeWidth float64
	Wireframe   int
	// Background fills the canvas before drawing. Nil leaves it transparent.
	Background color.Color
	// Noise applies a grain filter of the given strength to the result.
	Noise int
}

// Rasterize draws the mesh and returns the resulting image.
func (im *Image) Rasterize(m *Mesh) (image.Image, error) {
	if m == nil {
		return nil, newConfigError("mesh", "must not be nil")
	}
	width, height := int(math.Ceil(m.Width)), int(math.Ceil(m.Height))
	ctx := gg.NewContext(width, height)

	if im.Background != nil {
		ctx.DrawRectangle(0, 0, float64(width), float64(height))
		ctx.SetColor(im.Background)
		ctx.Fill()
	}

	for _, t := range m.Triangles {
		p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]

		ctx.Push()
		ctx.MoveTo(p0.X, p0.Y)
		ctx.LineTo(p1.X, p1.Y)
		ctx.LineTo(p2.X, p2.Y)
		ctx.ClosePath()

		fill := gg.NewSolidPattern(t.Color)
		switch im.Wireframe {
		case WithoutWireframe:
			ctx.SetFillStyle(fill)
			if im.StrokeWidth > 0 {
				ctx.SetStrokeStyle(fill)
				ctx.SetLineWidth(im.StrokeWidth)
				ctx.FillPreserve()
				ctx.Stroke()
			} else {
				ctx.Fill()
			}
		case WithWireframe:
			ctx.SetFillStyle(fill)
			ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 20}))
			ctx.SetLineWidth(Max(im.StrokeWidth, 1))
			ctx.FillPreserve()
			ctx.Stroke()
		case WireframeOnly:
			ctx.SetStrokeStyle(fill)
			ctx.SetLineWidth(Max(im.StrokeWidth, 1))
			ctx.Stroke()
		default:
			ctx.Pop()
			return nil, newConfigError("wireframe", fmt.Sprintf("unknown mode %d", im.Wireframe))
		}
		ctx.Pop()
	}

	img := ctx.Image()
	if im.Noise > 0 {
		img = Noise(im.Noise, img, width, height)
	}
	return img, nil
}

// Render encodes the rasterized mesh as PNG.
func (im *Image) Render(w io.Writer, m *Mesh) error {
	img, err := im.Rasterize(m)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("trianglify: encoding png: %w", err)
	}
	return nil
}

// SVG renders a mesh as a vector document.
type SVG struct {
	Title       string
	Description string
	StrokeWidth float64
	Wireframe   int
}

// Render writes one polygon per triangle. Coordinates are rounded to
// whole units.
func (s *SVG) Render(w io.Writer, m *Mesh) error {
	if m == nil {
		return newConfigError("mesh", "must not be nil")
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(m.Width)), int(math.Ceil(m.Height)))
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	if s.Description != "" {
		canvas.Desc(s.Description)
	}

	xs, ys := make([]int, 3), make([]int, 3)
	for _, t := range m.Triangles {
		for i, p := range t.Points {
			xs[i], ys[i] = int(math.Round(p.X)), int(math.Round(p.Y))
		}
		style, err := s.style(t.Color)
		if err != nil {
			return err
		}
		canvas.Polygon(xs, ys, style)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("trianglify: writing svg: %w", ew.err)
	}
	return nil
}

func (s *SVG) style(c color.RGBA) (string, error) {
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	switch s.Wireframe {
	case WithoutWireframe:
		if s.StrokeWidth > 0 {
			return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", rgb, rgb, s.StrokeWidth), nil
		}
		return "fill:" + rgb, nil
	case WithWireframe:
		return fmt.Sprintf("fill:%s;stroke:rgb(0,0,0);stroke-opacity:0.08;stroke-width:%g", rgb, Max(s.StrokeWidth, 1)), nil
	case WireframeOnly:
		return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", rgb, Max(s.StrokeWidth, 1)), nil
	}
	return "", newConfigError("wireframe", fmt.Sprintf("unknown mode %d", s.Wireframe))
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
