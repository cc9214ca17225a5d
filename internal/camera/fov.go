package camera

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
)

// ChangeXFovTo sets the horizontal field of view in radians, clamped to
// [MinFOV, MaxFOV], and recomputes both limits.
func (c *Camera) ChangeXFovTo(angle float64) error {
	c.xFov = mathutil.Clamp(angle, MinFOV, MaxFOV)
	return c.updateLimits()
}

// ChangeXFovBy adds delta to the horizontal field of view.
func (c *Camera) ChangeXFovBy(delta float64) error {
	return c.ChangeXFovTo(c.xFov + delta)
}

// ChangeYFovTo sets the vertical field of view on its own. From then on the
// vertical limit is measured from this angle rather than from the aspect ratio.
func (c *Camera) ChangeYFovTo(angle float64) error {
	c.yFov = mathutil.Clamp(angle, MinFOV, MaxFOV)
	c.yFovFree = true
	return c.updateLimits()
}

// ChangeYFovBy adds delta to the vertical field of view.
func (c *Camera) ChangeYFovBy(delta float64) error {
	return c.ChangeYFovTo(c.yFov + delta)
}

// LinkYFov makes the vertical limit follow the horizontal one and the aspect ratio again.
func (c *Camera) LinkYFov() error {
	c.yFovFree = false
	return c.updateLimits()
}

// SetWindowSize changes the surface the camera renders for.
func (c *Camera) SetWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("camera: invalid window size %dx%d", width, height)
	}
	c.width, c.height = width, height
	return c.updateLimits()
}

func (c *Camera) updateLimits() error {
	x, err := measureLimit(c.xFov, 0)
	if err != nil {
		return fmt.Errorf("camera: x limit for fov %v: %w", c.xFov, err)
	}
	c.xLimit = x

	if !c.yFovFree {
		c.yLimit = c.xLimit * c.AspectRatio()
		c.yFov = 2 * math.Atan(c.yLimit/ViewDistance)
		return nil
	}
	y, err := measureLimit(c.yFov, 1)
	if err != nil {
		return fmt.Errorf("camera: y limit for fov %v: %w", c.yFov, err)
	}
	c.yLimit = y
	return nil
}

// measureLimit casts a ray at half the given angle off the forward axis, bent
// toward axis (0 = x, 1 = y), and returns how far from the centre of a
// reference view plane it lands. The reference frame is the camera's own
// local one, so the result does not depend on position or orientation.
func measureLimit(fov float64, axis int) (float64, error) {
	ref := mathutil.Vec3{0, 0, ViewDistance}
	plane := geom.NewPlane(mathutil.UnitZ, ref)

	var dir mathutil.Vec3
	dir[axis] = math.Sin(fov / 2)
	dir[2] = math.Cos(fov / 2)

	hit, err := plane.IntersectRay(geom.Ray{Direction: dir})
	if err != nil {
		return 0, err
	}
	return hit[axis] - ref[axis], nil
}
