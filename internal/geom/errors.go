package geom

import "fmt"

// ParallelError reports a ray that never meets a plane because
// the plane normal and ray direction have a dot product of exactly zero.
type ParallelError struct {
	Plane Plane
	Ray   Ray
}

func (e *ParallelError) Error() string {
	return fmt.Sprintf("geom: %v and %v are parallel", e.Plane, e.Ray)
}
