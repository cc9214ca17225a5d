package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a premultiplied buffer down to width×height with
// CatmullRom filtering, then un-premultiplies. Filtering in premultiplied
// space keeps transparent edges from darkening.
func Downsample(src *image.RGBA, width, height int) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return toNRGBA(src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return toNRGBA(dst)
}

// toNRGBA un-premultiplies an RGBA buffer.
func toNRGBA(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	result := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(src.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = src.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
