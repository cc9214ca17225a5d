package geom

import "wireframe-renderer/internal/mathutil"

// Frustum bounds the view volume along the looking direction only.
// Both plane normals point into the volume. Side planes are not modelled,
// so anything between the near and far planes counts as inside.
type Frustum struct {
	Near Plane
	Far  Plane
}

// NewFrustum places the near and far planes at the given distances along
// the unit looking direction from position.
func NewFrustum(position, looking mathutil.Vec3, near, far float64) Frustum {
	return Frustum{
		Near: NewPlane(looking, position.Add(looking.Scale(near))),
		Far:  NewPlane(looking.Neg(), position.Add(looking.Scale(far))),
	}
}

// SphereOutside reports whether the sphere lies entirely behind the near
// plane or beyond the far plane.
func (f Frustum) SphereOutside(center mathutil.Vec3, radius float64) bool {
	return f.Near.SignedDistanceToPoint(center) < -radius ||
		f.Far.SignedDistanceToPoint(center) < -radius
}
