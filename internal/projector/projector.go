// Package projector maps camera-space geometry onto pixel coordinates.
package projector

import (
	"errors"
	"fmt"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/scene"
)

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

// Segment is one projected cuboid edge. Edge indexes scene.Edges.
type Segment struct {
	Edge int
	A, B Point
}

// Basis selects which axes of the view-plane offset become screen x and y.
type Basis int

const (
	// BasisWorld reads the world x and y components of the offset. This is
	// only geometrically right while the camera faces +Z.
	BasisWorld Basis = iota
	// BasisCamera reads the offset along the camera's right and up vectors.
	BasisCamera
)

// Projector maps points seen by a camera onto a Width×Height surface.
type Projector struct {
	Width  int
	Height int
	Basis  Basis

	// HideBackEdges drops edges that belong only to faces turned away from the camera.
	HideBackEdges bool
}

// New returns a projector for a surface of the given size using BasisWorld.
func New(width, height int) *Projector {
	return &Projector{Width: width, Height: height}
}

// Offset returns where the ray from the camera to p crosses the view plane,
// relative to the view plane's centre, in world units.
func Offset(cam *camera.Camera, p mathutil.Vec3) (mathutil.Vec3, error) {
	vp := cam.ViewPlane()
	hit, err := vp.IntersectRay(geom.RayFromTo(cam.Position(), p))
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return hit.Sub(vp.Point()), nil
}

// Point projects a world-space point to pixel coordinates.
func (pr *Projector) Point(cam *camera.Camera, p mathutil.Vec3) (Point, error) {
	off, err := Offset(cam, p)
	if err != nil {
		return Point{}, err
	}

	var dx, dy float64
	switch pr.Basis {
	case BasisCamera:
		right, up, _ := cam.Basis()
		dx, dy = off.Dot(right), off.Dot(up)
	default:
		dx, dy = off[0], off[1]
	}

	w, h := float64(pr.Width), float64(pr.Height)
	return Point{
		X: dx*(w/(2*cam.XLimit())) + w/2,
		Y: dy*(h/(2*cam.YLimit())) + h/2,
	}, nil
}

// Cuboid projects every corner of c and returns its edges in scene.Edges order.
//
// Corners whose ray runs parallel to the view plane cannot be placed; their
// edges are left out and the returned error joins one *geom.ParallelError
// per such corner. The segments that could be projected are returned either way.
func (pr *Projector) Cuboid(cam *camera.Camera, c *scene.Cuboid) ([]Segment, error) {
	var (
		pts  [8]Point
		ok   [8]bool
		errs []error
	)
	for i, corner := range c.Corners() {
		p, err := pr.Point(cam, corner)
		if err != nil {
			errs = append(errs, fmt.Errorf("projector: corner %d: %w", i, err))
			continue
		}
		pts[i], ok[i] = p, true
	}

	var want [12]bool
	if pr.HideBackEdges {
		for _, f := range c.FacesVisibleFrom(cam.Position()) {
			for _, e := range scene.FaceEdges[f] {
				want[e] = true
			}
		}
	} else {
		for i := range want {
			want[i] = true
		}
	}

	segs := make([]Segment, 0, len(scene.Edges))
	for i, e := range scene.Edges {
		if !want[i] || !ok[e[0]] || !ok[e[1]] {
			continue
		}
		segs = append(segs, Segment{Edge: i, A: pts[e[0]], B: pts[e[1]]})
	}
	return segs, errors.Join(errs...)
}
