package scene

import (
	"fmt"

	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
)

// Face identifies one side of a cuboid.
type Face int

const (
	FaceFront  Face = iota // -Z
	FaceLeft               // -X
	FaceRight              // +X
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceBack               // +Z
)

var faceNames = [6]string{"front", "left", "right", "top", "bottom", "back"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Corner layout, (x, y, z) is the origin:
//
//	0:(x,y+h,z)    1:(x+w,y+h,z)    2:(x,y,z)      3:(x+w,y,z)
//	4:(x,y+h,z+l)  5:(x+w,y+h,z+l)  6:(x,y,z+l)    7:(x+w,y,z+l)
//
// Edges, FaceCorners and FaceEdges all index into it.

// Edges lists the 12 wireframe edges as corner index pairs.
var Edges = [12][2]int{
	{0, 1}, // 0
	{0, 2}, // 1
	{0, 4}, // 2
	{1, 3}, // 3
	{1, 5}, // 4
	{2, 3}, // 5
	{2, 6}, // 6
	{3, 7}, // 7
	{4, 5}, // 8
	{4, 6}, // 9
	{5, 7}, // 10
	{6, 7}, // 11
}

var faceNormals = [6]mathutil.Vec3{
	{0, 0, -1},
	{-1, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
}

// FaceCorners lists each face's corners in order around its boundary.
var FaceCorners = [6][4]int{
	{0, 1, 3, 2},
	{0, 2, 6, 4},
	{1, 3, 7, 5},
	{0, 1, 5, 4},
	{2, 3, 7, 6},
	{4, 5, 7, 6},
}

// FaceEdges lists the indices into Edges bounding each face.
var FaceEdges = [6][4]int{
	{0, 1, 3, 5},
	{1, 2, 6, 9},
	{3, 4, 7, 10},
	{0, 2, 4, 8},
	{5, 6, 7, 11},
	{8, 9, 10, 11},
}

// Cuboid is an axis-aligned box. All derived geometry is computed by
// NewCuboid and never changes.
type Cuboid struct {
	origin mathutil.Vec3
	width  float64
	height float64
	length float64

	corners [8]mathutil.Vec3
	faces   [6]geom.Plane
	center  mathutil.Vec3
	radius  float64
}

// NewCuboid builds a box spanning origin to origin+(width, height, length).
// Every dimension must be positive.
func NewCuboid(origin mathutil.Vec3, width, height, length float64) (*Cuboid, error) {
	if !(width > 0 && height > 0 && length > 0) {
		return nil, fmt.Errorf("scene: cuboid dimensions must be positive, got %gx%gx%g", width, height, length)
	}
	x, y, z := origin[0], origin[1], origin[2]
	c := &Cuboid{
		origin: origin,
		width:  width,
		height: height,
		length: length,
		corners: [8]mathutil.Vec3{
			{x, y + height, z},
			{x + width, y + height, z},
			{x, y, z},
			{x + width, y, z},
			{x, y + height, z + length},
			{x + width, y + height, z + length},
			{x, y, z + length},
			{x + width, y, z + length},
		},
		center: mathutil.Vec3{x + width/2, y + height/2, z + length/2},
	}

	for f := range c.faces {
		var sum mathutil.Vec3
		for _, i := range FaceCorners[f] {
			sum = sum.Add(c.corners[i])
		}
		c.faces[f] = geom.NewPlane(faceNormals[f], sum.Div(4))
	}

	// Distance to one corner; a coarse bound used only for culling.
	c.radius = c.center.Sub(c.corners[0]).Len()
	return c, nil
}

func (c *Cuboid) Origin() mathutil.Vec3 { return c.origin }

// Size returns width, height and length.
func (c *Cuboid) Size() (float64, float64, float64) { return c.width, c.height, c.length }

func (c *Cuboid) Corners() [8]mathutil.Vec3 { return c.corners }
func (c *Cuboid) Corner(i int) mathutil.Vec3 { return c.corners[i] }

// Face returns the plane of face f, anchored at the face centre with an outward normal.
func (c *Cuboid) Face(f Face) geom.Plane { return c.faces[f] }

// Center and Radius describe the bounding sphere.
func (c *Cuboid) Center() mathutil.Vec3 { return c.center }
func (c *Cuboid) Radius() float64       { return c.radius }

// Max returns the corner opposite the origin.
func (c *Cuboid) Max() mathutil.Vec3 { return c.corners[5] }

// CollidesWith reports whether the two boxes overlap on every axis.
// Touching faces do not count as overlap.
func (c *Cuboid) CollidesWith(o *Cuboid) bool {
	return c.origin[0] < o.origin[0]+o.width && c.origin[0]+c.width > o.origin[0] &&
		c.origin[1] < o.origin[1]+o.height && c.origin[1]+c.height > o.origin[1] &&
		c.origin[2] < o.origin[2]+o.length && c.origin[2]+c.length > o.origin[2]
}

// FacesVisibleFrom returns the faces whose outward side contains p.
// A point inside the box sees none.
func (c *Cuboid) FacesVisibleFrom(p mathutil.Vec3) []Face {
	var out []Face
	for f, plane := range c.faces {
		if plane.SignedDistanceToPoint(p) > 0 {
			out = append(out, Face(f))
		}
	}
	return out
}

func (c *Cuboid) String() string {
	return fmt.Sprintf("Cuboid: min = %v, max = %v", c.corners[2], c.corners[5])
}
