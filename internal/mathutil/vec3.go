package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Two vectors are equal under == only when every component matches exactly.
type Vec3 [3]float64

// Axis unit vectors. Y is up, Z points away from the viewer.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// RightAngle is what AngleBetween reports for perpendicular vectors.
const RightAngle = math.Pi / 2

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Neg returns the vector pointing the opposite way.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Reverse negates v in place.
func (v *Vec3) Reverse() {
	v[0], v[1], v[2] = -v[0], -v[1], -v[2]
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// AngleBetween returns the angle between a and b in radians.
// A dot product of exactly zero short-circuits to RightAngle without calling acos.
func (a Vec3) AngleBetween(b Vec3) float64 {
	d := a.Dot(b)
	if d == 0 {
		return RightAngle
	}
	return math.Acos(Clamp(d/(a.Len()*b.Len()), -1, 1))
}

// ApproxEqual compares component-wise within eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps &&
		math.Abs(a[1]-b[1]) <= eps &&
		math.Abs(a[2]-b[2]) <= eps
}

// VectorFromTo returns the displacement from point a to point b.
func VectorFromTo(a, b Vec3) Vec3 {
	return b.Sub(a)
}
