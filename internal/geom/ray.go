// Package geom holds the ray/plane primitives every projection is built on.
package geom

import (
	"fmt"

	"wireframe-renderer/internal/mathutil"
)

// Ray is the half-line Origin + t·Direction, t >= 0.
// Direction need not be unit length.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// RayFromTo returns a ray starting at from whose direction reaches to at t = 1.
func RayFromTo(from, to mathutil.Vec3) Ray {
	return Ray{Origin: from, Direction: mathutil.VectorFromTo(from, to)}
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray: (x, y, z) = %v + t%v", r.Origin, r.Direction)
}
