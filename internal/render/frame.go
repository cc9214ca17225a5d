// Package render drives one frame: cull, project and hand segments to a surface.
package render

import (
	"errors"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/projector"
	"wireframe-renderer/internal/scene"
)

// Surface is anything wireframe segments can be drawn onto.
type Surface interface {
	DrawLine(a, b projector.Point)
	Size() (width, height int)
}

// Options control a frame render.
type Options struct {
	Basis         projector.Basis
	HideBackEdges bool

	// FarDistance enables bounding-sphere culling against the near (view
	// plane) and far planes. Zero disables culling.
	FarDistance float64

	// ClipMargin is how far, in pixels, segments may extend past the surface
	// before they are cut.
	ClipMargin float64
}

// DefaultOptions culls nothing and clips a 64px margin.
func DefaultOptions() Options {
	return Options{ClipMargin: 64}
}

// Stats summarises what a frame drew.
type Stats struct {
	Cuboids  int // cuboids considered
	Culled   int // cuboids skipped by the frustum test
	Segments int // segments handed to the surface
	Clipped  int // segments entirely off-surface
	Skipped  int // corners dropped because their ray was parallel to the view plane
}

// Frame projects every cuboid through cam and draws the result on s.
// Degenerate corners never abort the frame; they are counted in Stats.Skipped.
func Frame(s Surface, cam *camera.Camera, cuboids []*scene.Cuboid, opts Options) Stats {
	w, h := s.Size()
	pr := &projector.Projector{
		Width:         w,
		Height:        h,
		Basis:         opts.Basis,
		HideBackEdges: opts.HideBackEdges,
	}

	var fr geom.Frustum
	cull := opts.FarDistance > 0
	if cull {
		fr = cam.Frustum(opts.FarDistance)
	}

	bounds := rect{
		minX: -opts.ClipMargin, minY: -opts.ClipMargin,
		maxX: float64(w) + opts.ClipMargin, maxY: float64(h) + opts.ClipMargin,
	}

	var st Stats
	for _, c := range cuboids {
		st.Cuboids++
		if cull && fr.SphereOutside(c.Center(), c.Radius()) {
			st.Culled++
			continue
		}

		segs, err := pr.Cuboid(cam, c)
		if err != nil {
			st.Skipped += countParallel(err)
		}
		for _, seg := range segs {
			a, b, ok := clipSegment(seg.A, seg.B, bounds)
			if !ok {
				st.Clipped++
				continue
			}
			s.DrawLine(a, b)
			st.Segments++
		}
	}
	return st
}

func countParallel(err error) int {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return 1
	}
	n := 0
	for _, e := range joined.Unwrap() {
		var pe *geom.ParallelError
		if errors.As(e, &pe) {
			n++
		}
	}
	return n
}
