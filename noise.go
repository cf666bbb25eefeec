package trianglify

import (
	"image"
	"image/color"
)

// lcg is a Park-Miller minimal standard generator. The grain pattern only
// depends on the image size, so a mesh always gets the same texture.
type lcg struct {
	state int
}

const (
	lcgMul = 16807
	lcgMod = 0x7fffffff
)

func (g *lcg) next() float64 {
	lo := lcgMul * (g.state & 0xffff)
	hi := lcgMul * (g.state >> 16)
	lo += (hi & 0x7fff) << 16
	if lo > lcgMod {
		lo &= lcgMod
		lo++
	}
	lo += hi >> 15
	if lo > lcgMod {
		lo &= lcgMod
		lo++
	}
	g.state = lo
	return float64(lo) / lcgMod
}

// Noise applies a grain filter of the given amount over the source image.
func Noise(amount int, src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	rnd := &lcg{state: 1}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			grain := (rnd.next() - 0.1) * float64(amount)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(Clamp(float64(c.R)+grain, 0, 255)),
				G: uint8(Clamp(float64(c.G)+grain, 0, 255)),
				B: uint8(Clamp(float64(c.B)+grain, 0, 255)),
				A: c.A,
			})
		}
	}
	return dst
}
