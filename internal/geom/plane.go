package geom

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/mathutil"
)

// Plane is the set of points P with normal·P + constant = 0.
// The constant is cached and recomputed by every mutator.
type Plane struct {
	normal   mathutil.Vec3
	point    mathutil.Vec3
	constant float64
}

// NewPlane builds the plane through point with the given normal.
func NewPlane(normal, point mathutil.Vec3) Plane {
	p := Plane{normal: normal, point: point}
	p.updateConstant()
	return p
}

func (p *Plane) updateConstant() {
	p.constant = -p.normal.Dot(p.point)
}

func (p Plane) Normal() mathutil.Vec3 { return p.normal }
func (p Plane) Point() mathutil.Vec3  { return p.point }
func (p Plane) Constant() float64     { return p.constant }

func (p *Plane) ChangeNormal(n mathutil.Vec3) {
	p.normal = n
	p.updateConstant()
}

func (p *Plane) ChangePoint(pt mathutil.Vec3) {
	p.point = pt
	p.updateConstant()
}

func (p *Plane) ChangeNormalAndPoint(n, pt mathutil.Vec3) {
	p.normal = n
	p.point = pt
	p.updateConstant()
}

// RayParam returns t such that r.At(t) lies on the plane.
// The parallel test is exact: only a dot product of 0 is rejected.
func (p Plane) RayParam(r Ray) (float64, error) {
	denom := p.normal.Dot(r.Direction)
	if denom == 0 {
		return 0, &ParallelError{Plane: p, Ray: r}
	}
	return -(p.constant + p.normal.Dot(r.Origin)) / denom, nil
}

// IntersectRay returns the point where the ray's line crosses the plane.
// Negative parameters are not rejected; points behind the origin come back mirrored.
func (p Plane) IntersectRay(r Ray) (mathutil.Vec3, error) {
	t, err := p.RayParam(r)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return r.At(t), nil
}

// DistanceToPoint returns the unsigned perpendicular distance to pt.
func (p Plane) DistanceToPoint(pt mathutil.Vec3) float64 {
	return math.Abs(p.normal.Dot(pt)+p.constant) / p.normal.Len()
}

// SignedDistanceToPoint is positive on the side the normal points to.
func (p Plane) SignedDistanceToPoint(pt mathutil.Vec3) float64 {
	return (p.normal.Dot(pt) + p.constant) / p.normal.Len()
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane: %gx + %gy + %gz = %g", p.normal[0], p.normal[1], p.normal[2], -p.constant)
}
