/*
Package trianglify generates decorative low-poly backgrounds: a rectangular
area is split into a grid of jittered points, every grid cell into two
triangles, and every triangle is shaded from a color palette according to
its position along the area's diagonal.

The package also ships a command line utility.
Check the supported flags by typing:

	$ trianglify --help

Using Go interfaces the mesh can be rendered either as raster or vector type.

Example to generate a mesh and output the result as PNG:

	package main

	import (
		"log"
		"os"

		"github.com/uclaradio/trianglify"
	)

	func main() {
		palette, err := trianglify.PaletteByName("GnBu")
		if err != nil {
			log.Fatal(err)
		}
		mesh, err := trianglify.Generate(1280, 720, 50, 50, 25, palette)
		if err != nil {
			log.Fatal(err)
		}
		img := &trianglify.Image{StrokeWidth: 1}
		if err := img.Render(os.Stdout, mesh); err != nil {
			log.Fatal(err)
		}
	}

Example to keep a mesh in sync with a resizable area and output it as SVG:

	view := trianglify.NewView(time.Now().UnixNano())
	if err := view.SetColorScheme("Purples"); err != nil {
		log.Fatal(err)
	}
	if err := view.Layout(800, 600); err != nil {
		log.Fatal(err)
	}
	svg := &trianglify.SVG{
		Title:       "Trianglify",
		StrokeWidth: 1,
	}
	if err := view.Render(svg, os.Stdout); err != nil {
		log.Fatal(err)
	}

Generation is deterministic for a given random source: pass a seeded
*rand.Rand to NewGenerator to reproduce a mesh.
*/
package trianglify
