package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uclaradio/trianglify"
	"github.com/uclaradio/trianglify/utils"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
)

var (
	// Flags
	destination = flag.String("out", "", "Destination file (.png or .svg), - for PNG on stdout")
	width       = flag.Float64("width", 1280, "Area width")
	height      = flag.Float64("height", 720, "Area height")
	cellWidth   = flag.Float64("cell", 50, "Cell width")
	cellHeight  = flag.Float64("cellh", 0, "Cell height (defaults to the cell width)")
	jitter      = flag.Float64("jitter", 25, "Maximum point displacement")
	variation   = flag.Float64("variation", trianglify.DefaultVariation, "Jitter scale between 0 and 1")
	scheme      = flag.String("scheme", trianglify.DefaultScheme, "Color scheme name, or \"random\"")
	positional  = flag.Bool("positional", false, "Sweep the whole palette instead of blending two fixed entries")
	seed        = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	wireframe   = flag.Int("wireframe", 0, "Wireframe mode: 0 none, 1 with wireframe, 2 wireframe only")
	strokeWidth = flag.Float64("stroke", 1, "Triangle stroke width")
	noise       = flag.Int("noise", 0, "Noise factor (PNG only)")
	background  = flag.String("bg", "", "Background color name (PNG only)")
	list        = flag.Bool("list", false, "List the available color schemes")
)

func main() {
	flag.Parse()

	if *list {
		for _, name := range trianglify.SchemeNames() {
			fmt.Println(name)
		}
		return
	}
	if len(*destination) == 0 {
		log.Fatal("Usage: trianglify -out background.png")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))

	name := *scheme
	if name == "random" {
		name = trianglify.RandomScheme(rnd)
	}
	palette, err := trianglify.PaletteByName(name)
	if err != nil {
		log.Fatalf("Unable to load color scheme: %v", err)
	}

	if *cellHeight == 0 {
		*cellHeight = *cellWidth
	}
	gen := &trianglify.Generator{
		Variation: *variation,
		Rand:      rnd,
	}
	if *positional {
		gen.Coloring = trianglify.Positional
	}

	renderer, err := newRenderer(*destination, name)
	if err != nil {
		log.Fatalf("Unable to set up renderer: %v", err)
	}

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	s := utils.NewSpinner(os.Stderr)
	if interactive {
		s.Start("Generating triangulated background...")
	}
	start := time.Now()

	mesh, err := gen.Generate(*width, *height, *cellWidth, *cellHeight, *jitter, palette)
	if err == nil {
		err = writeOutput(*destination, func(w io.Writer) error {
			return renderer.Render(w, mesh)
		})
	}
	s.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%sError generating background: %s%s\n", utils.ErrorColor, err.Error(), utils.DefaultColor)
		os.Exit(1)
	}
	if interactive {
		fmt.Fprintf(os.Stderr, "\nGenerated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
		fmt.Fprintf(os.Stderr, "Total number of %s%d%s triangles on a %dx%d grid, scheme %s, seed %d\n",
			utils.SuccessColor, len(mesh.Triangles), utils.DefaultColor, mesh.Rows, mesh.Cols, name, *seed)
		if *destination != stdoutName {
			fmt.Fprintf(os.Stderr, "Saved as: %s %s✓%s\n", filepath.Base(*destination), utils.SuccessColor, utils.DefaultColor)
		}
		fmt.Fprintln(os.Stderr)
	}
}

func newRenderer(dst, scheme string) (trianglify.Renderer, error) {
	switch ext := strings.ToLower(filepath.Ext(dst)); ext {
	case ".svg":
		return &trianglify.SVG{
			Title:       "Trianglify",
			Description: fmt.Sprintf("Triangulated background using the %s color scheme.", scheme),
			StrokeWidth: *strokeWidth,
			Wireframe:   *wireframe,
		}, nil
	case ".png", "":
		bg, err := parseColor(*background)
		if err != nil {
			return nil, err
		}
		return &trianglify.Image{
			StrokeWidth: *strokeWidth,
			Wireframe:   *wireframe,
			Background:  bg,
			Noise:       *noise,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

func parseColor(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}
