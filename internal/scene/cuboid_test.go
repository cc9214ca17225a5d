package scene

import (
	"math"
	"testing"

	"wireframe-renderer/internal/mathutil"
)

func mustCuboid(t *testing.T, x, y, z, w, h, l float64) *Cuboid {
	t.Helper()
	c, err := NewCuboid(mathutil.Vec3{x, y, z}, w, h, l)
	if err != nil {
		t.Fatalf("NewCuboid: %v", err)
	}
	return c
}

func TestCorners(t *testing.T) {
	c := mustCuboid(t, 1, 2, 3, 4, 5, 6)
	want := [8]mathutil.Vec3{
		{1, 7, 3}, {5, 7, 3}, {1, 2, 3}, {5, 2, 3},
		{1, 7, 9}, {5, 7, 9}, {1, 2, 9}, {5, 2, 9},
	}
	if c.Corners() != want {
		t.Errorf("corners = %v\nwant %v", c.Corners(), want)
	}
	if c.Max() != (mathutil.Vec3{5, 7, 9}) {
		t.Errorf("Max = %v", c.Max())
	}
}

func TestEdgesAreAxisAligned(t *testing.T) {
	c := mustCuboid(t, 0, 0, 0, 2, 3, 4)
	seen := map[[2]int]bool{}
	for _, e := range Edges {
		d := c.Corner(e[1]).Sub(c.Corner(e[0]))
		nonZero := 0
		for _, v := range d {
			if v != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			t.Errorf("edge %v is not along one axis: %v", e, d)
		}
		if seen[e] {
			t.Errorf("duplicate edge %v", e)
		}
		seen[e] = true
	}
}

func TestFaces(t *testing.T) {
	c := mustCuboid(t, -1, -1, -1, 2, 4, 6)
	for f := FaceFront; f <= FaceBack; f++ {
		plane := c.Face(f)
		// Every corner of the face lies on its plane.
		var centroid mathutil.Vec3
		for _, i := range FaceCorners[f] {
			if d := plane.DistanceToPoint(c.Corner(i)); d != 0 {
				t.Errorf("%v: corner %d is %v off the plane", f, i, d)
			}
			centroid = centroid.Add(c.Corner(i))
		}
		if plane.Point() != centroid.Div(4) {
			t.Errorf("%v: point %v, want centroid %v", f, plane.Point(), centroid.Div(4))
		}
		// Normal points away from the box.
		if plane.SignedDistanceToPoint(c.Center()) >= 0 {
			t.Errorf("%v: normal %v points inward", f, plane.Normal())
		}
		// Face edges connect only the face's own corners.
		own := map[int]bool{}
		for _, i := range FaceCorners[f] {
			own[i] = true
		}
		for _, e := range FaceEdges[f] {
			if !own[Edges[e][0]] || !own[Edges[e][1]] {
				t.Errorf("%v: edge %d %v leaves the face", f, e, Edges[e])
			}
		}
	}
}

func TestBoundingSphere(t *testing.T) {
	c := mustCuboid(t, 0, 0, 0, 2, 2, 2)
	if c.Center() != (mathutil.Vec3{1, 1, 1}) {
		t.Errorf("center = %v", c.Center())
	}
	if math.Abs(c.Radius()-math.Sqrt(3)) > 1e-12 {
		t.Errorf("radius = %v, want √3", c.Radius())
	}
	for _, p := range c.Corners() {
		if d := p.Sub(c.Center()).Len(); d > c.Radius()+1e-12 {
			t.Errorf("corner %v outside sphere (%v > %v)", p, d, c.Radius())
		}
	}
}

func TestNewCuboidRejectsDegenerate(t *testing.T) {
	for _, dims := range [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}, {math.NaN(), 1, 1}} {
		if _, err := NewCuboid(mathutil.Vec3{}, dims[0], dims[1], dims[2]); err == nil {
			t.Errorf("NewCuboid(%v) succeeded", dims)
		}
	}
}

func TestCollidesWith(t *testing.T) {
	a := mustCuboid(t, 0, 0, 0, 10, 10, 10)
	tests := []struct {
		name string
		b    *Cuboid
		want bool
	}{
		{"overlap", mustCuboid(t, 5, 5, 5, 10, 10, 10), true},
		{"inside", mustCuboid(t, 2, 2, 2, 1, 1, 1), true},
		{"touching", mustCuboid(t, 10, 0, 0, 5, 5, 5), false},
		{"apart x", mustCuboid(t, 20, 0, 0, 5, 5, 5), false},
		{"apart y only", mustCuboid(t, 0, 11, 0, 5, 5, 5), false},
		{"apart z only", mustCuboid(t, 0, 0, -6, 5, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.CollidesWith(tt.b); got != tt.want {
				t.Errorf("a.CollidesWith(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.CollidesWith(a); got != tt.want {
				t.Errorf("b.CollidesWith(a) = %v, want %v", got, tt.want)
			}
			if !tt.b.CollidesWith(tt.b) {
				t.Error("cuboid does not collide with itself")
			}
		})
	}
}

func TestFacesVisibleFrom(t *testing.T) {
	c := mustCuboid(t, -5, -5, 15, 10, 10, 10)
	got := c.FacesVisibleFrom(mathutil.Vec3{0, 0, 0})
	if len(got) != 1 || got[0] != FaceFront {
		t.Errorf("from origin: %v, want [front]", got)
	}
	got = c.FacesVisibleFrom(mathutil.Vec3{20, 20, 0})
	want := []Face{FaceFront, FaceRight, FaceTop}
	if len(got) != len(want) {
		t.Fatalf("from corner: %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("from corner: %v, want %v", got, want)
		}
	}
	if got := c.FacesVisibleFrom(c.Center()); len(got) != 0 {
		t.Errorf("from inside: %v", got)
	}
	if FaceTop.String() != "top" || Face(9).String() != "Face(9)" {
		t.Error("Face.String")
	}
}
