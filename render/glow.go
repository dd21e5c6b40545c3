package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// glowSize is the edge length of the billboard texture in pixels.
const glowSize = 32

// glowPixels returns premultiplied RGBA pixels of a white radial glow whose
// alpha falls off quadratically from the center to the edge.
func glowPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			a := 0.0
			if d < 1 {
				a = (1 - d) * (1 - d)
			}
			v := byte(math.Round(a * 255))
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return pix
}

// newGlowImage uploads the glow texture.
func newGlowImage() *ebiten.Image {
	img := ebiten.NewImage(glowSize, glowSize)
	img.WritePixels(glowPixels(glowSize))
	return img
}
