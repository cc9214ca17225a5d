// Package raster is an offscreen drawing surface for wireframe frames.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"wireframe-renderer/internal/projector"
)

// Canvas accumulates anti-aliased line strokes into an RGBA buffer rendered
// at Supersample× resolution. Lines are batched into one path and rasterized
// on Flush, so overlapping strokes never double up.
type Canvas struct {
	Width       int
	Height      int
	Supersample int
	Stroke      float64 // line width in output pixels
	Foreground  color.NRGBA
	Background  color.NRGBA

	buf     *image.RGBA
	ras     *vector.Rasterizer
	pending int
}

// NewCanvas allocates a width×height canvas cleared to bg.
func NewCanvas(width, height, supersample int, stroke float64, fg, bg color.NRGBA) *Canvas {
	if supersample < 1 {
		supersample = 1
	}
	if stroke <= 0 {
		stroke = 1
	}
	w, h := width*supersample, height*supersample
	c := &Canvas{
		Width:       width,
		Height:      height,
		Supersample: supersample,
		Stroke:      stroke,
		Foreground:  fg,
		Background:  bg,
		buf:         image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:         vector.NewRasterizer(w, h),
	}
	c.Clear()
	return c
}

// Size reports the output size, not the supersampled buffer size.
func (c *Canvas) Size() (int, int) {
	return c.Width, c.Height
}

// Clear drops pending strokes and fills the buffer with the background.
func (c *Canvas) Clear() {
	b := c.buf.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.pending = 0
	draw.Draw(c.buf, b, image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// DrawLine queues a stroke from a to b. Zero-length lines are ignored.
func (c *Canvas) DrawLine(a, b projector.Point) {
	s := float64(c.Supersample)
	ax, ay := a.X*s, a.Y*s
	bx, by := b.X*s, b.Y*s

	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Half-width normal; the quad is always wound the same way.
	hw := c.Stroke * s / 2
	nx, ny := -dy/l*hw, dx/l*hw

	c.ras.MoveTo(float32(ax+nx), float32(ay+ny))
	c.ras.LineTo(float32(bx+nx), float32(by+ny))
	c.ras.LineTo(float32(bx-nx), float32(by-ny))
	c.ras.LineTo(float32(ax-nx), float32(ay-ny))
	c.ras.ClosePath()
	c.pending++
}

// Flush rasterizes queued strokes into the buffer.
func (c *Canvas) Flush() {
	if c.pending == 0 {
		return
	}
	b := c.buf.Bounds()
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.buf, b, image.NewUniform(c.Foreground), image.Point{})
	c.ras.Reset(b.Dx(), b.Dy())
	c.pending = 0
}

// Image flushes and returns the frame at output resolution.
func (c *Canvas) Image() *image.NRGBA {
	c.Flush()
	if c.Supersample > 1 {
		return Downsample(c.buf, c.Width, c.Height)
	}
	return toNRGBA(c.buf)
}
