// Package camera holds the movable, rotatable viewpoint and the view plane
// everything is projected onto.
package camera

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
)

const (
	// ViewDistance is how far in front of the camera the view plane sits.
	ViewDistance = 10.0

	MinFOV = math.Pi / 100
	MaxFOV = 99 * math.Pi / 100

	// MaxPitch keeps the looking vector off the vertical axis, where yaw
	// stops meaning anything.
	MaxPitch = 49 * math.Pi / 100

	DefaultFOV = math.Pi / 3
)

// Camera is a viewpoint with a yaw/pitch orientation and a horizontal field of view.
//
// The view plane, projection limits and vertical FOV are derived state; every
// mutator rebuilds them before returning. Camera is not safe for concurrent use.
type Camera struct {
	position mathutil.Vec3
	looking  mathutil.Vec3
	yaw      float64
	pitch    float64

	xFov     float64
	yFov     float64
	yFovFree bool // vertical FOV set on its own instead of following the aspect ratio

	viewPlane geom.Plane
	xLimit    float64
	yLimit    float64

	width  int
	height int
}

// New creates a camera looking down +Z from start, sized for a width×height surface.
func New(width, height int, xFov float64, start mathutil.Vec3) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("camera: invalid window size %dx%d", width, height)
	}
	c := &Camera{
		position: start,
		looking:  mathutil.UnitZ,
		width:    width,
		height:   height,
	}
	c.syncViewPlane()
	if err := c.ChangeXFovTo(xFov); err != nil {
		return nil, err
	}
	return c, nil
}

// Clone returns an independent copy.
func (c *Camera) Clone() *Camera {
	cp := *c
	return &cp
}

func (c *Camera) Position() mathutil.Vec3 { return c.position }

// Looking returns the unit looking direction.
func (c *Camera) Looking() mathutil.Vec3 { return c.looking }

func (c *Camera) Yaw() float64   { return c.yaw }
func (c *Camera) Pitch() float64 { return c.pitch }
func (c *Camera) XFov() float64  { return c.xFov }
func (c *Camera) YFov() float64  { return c.yFov }

// XLimit is the horizontal half-extent of the visible region on the view plane.
func (c *Camera) XLimit() float64 { return c.xLimit }

// YLimit is the vertical half-extent of the visible region on the view plane.
func (c *Camera) YLimit() float64 { return c.yLimit }

func (c *Camera) ViewPlane() geom.Plane { return c.viewPlane }

func (c *Camera) WindowSize() (int, int) { return c.width, c.height }

// AspectRatio is height over width.
func (c *Camera) AspectRatio() float64 {
	return float64(c.height) / float64(c.width)
}

// Basis returns the camera's right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward mathutil.Vec3) {
	m := mathutil.YawPitch(c.yaw, c.pitch)
	return m.Column(0), m.Column(1), c.looking
}

// Frustum returns the near/far view volume starting at the view plane.
func (c *Camera) Frustum(far float64) geom.Frustum {
	return geom.NewFrustum(c.position, c.looking, ViewDistance, far)
}

// State is a plain snapshot of the camera for reporting.
type State struct {
	Position mathutil.Vec3
	Yaw      float64
	Pitch    float64
	XFov     float64
	YFov     float64
	XLimit   float64
	YLimit   float64
}

// State returns the camera's current snapshot.
func (c *Camera) State() State {
	return State{
		Position: c.position,
		Yaw:      c.yaw,
		Pitch:    c.pitch,
		XFov:     c.xFov,
		YFov:     c.yFov,
		XLimit:   c.xLimit,
		YLimit:   c.yLimit,
	}
}

// MoveTo places the camera at p. Orientation is unchanged.
func (c *Camera) MoveTo(p mathutil.Vec3) {
	c.position = p
	c.syncViewPlane()
}

// Move shifts the camera by delta in world space.
func (c *Camera) Move(delta mathutil.Vec3) {
	c.MoveTo(c.position.Add(delta))
}

// RotateTo sets the yaw about the vertical axis, keeping the pitch.
func (c *Camera) RotateTo(yaw float64) {
	c.yaw = yaw
	c.orient()
}

// Rotate adds delta to the yaw.
func (c *Camera) Rotate(delta float64) {
	c.RotateTo(c.yaw + delta)
}

// PitchTo sets the pitch, clamped to ±MaxPitch.
func (c *Camera) PitchTo(pitch float64) {
	c.pitch = mathutil.Clamp(pitch, -MaxPitch, MaxPitch)
	c.orient()
}

// PitchBy adds delta to the pitch.
func (c *Camera) PitchBy(delta float64) {
	c.PitchTo(c.pitch + delta)
}

func (c *Camera) orient() {
	c.looking = mathutil.FromYawPitch(c.yaw, c.pitch)
	c.syncViewPlane()
}

// syncViewPlane rebuilds the view plane from the current position and looking vector.
func (c *Camera) syncViewPlane() {
	c.viewPlane.ChangeNormalAndPoint(c.looking, c.position.Add(c.looking.Scale(ViewDistance)))
}

// String summarises the camera for debug output.
func (c *Camera) String() string {
	return fmt.Sprintf("Camera: pos=%v yaw=%.4f pitch=%.4f xfov=%.4f xlim=%.4f ylim=%.4f",
		c.position, c.yaw, c.pitch, c.xFov, c.xLimit, c.yLimit)
}
