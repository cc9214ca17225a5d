package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe-renderer/internal/mathutil"
)

const eps = 1e-9

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := New(1280, 720, DefaultFOV, mathutil.Vec3{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// checkViewPlane asserts the derived view plane matches position and orientation.
func checkViewPlane(t *testing.T, c *Camera) {
	t.Helper()
	vp := c.ViewPlane()
	if vp.Normal() != c.Looking() {
		t.Errorf("view plane normal %v != looking %v", vp.Normal(), c.Looking())
	}
	want := c.Position().Add(c.Looking().Scale(ViewDistance))
	if vp.Point() != want {
		t.Errorf("view plane point %v, want %v", vp.Point(), want)
	}
	if vp.Constant() != -vp.Normal().Dot(vp.Point()) {
		t.Errorf("stale plane constant %v", vp.Constant())
	}
}

func TestNew(t *testing.T) {
	c := newTestCamera(t)
	if c.Looking() != mathutil.UnitZ {
		t.Errorf("looking = %v, want +Z", c.Looking())
	}
	checkViewPlane(t, c)

	wantX := ViewDistance * math.Tan(DefaultFOV/2)
	if math.Abs(c.XLimit()-wantX) > eps {
		t.Errorf("x limit = %v, want %v", c.XLimit(), wantX)
	}
	if got, want := c.YLimit(), c.XLimit()*720/1280; got != want {
		t.Errorf("y limit = %v, want %v", got, want)
	}
	if w, h := c.WindowSize(); w != 1280 || h != 720 {
		t.Errorf("window = %dx%d", w, h)
	}
}

func TestNewStartPosition(t *testing.T) {
	c, err := New(800, 600, DefaultFOV, mathutil.Vec3{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if c.ViewPlane().Point() != (mathutil.Vec3{1, 2, 13}) {
		t.Errorf("view plane point = %v", c.ViewPlane().Point())
	}
}

func TestNewRejectsEmptyWindow(t *testing.T) {
	for _, sz := range [][2]int{{0, 720}, {1280, 0}, {-1, 5}} {
		if _, err := New(sz[0], sz[1], DefaultFOV, mathutil.Vec3{}); err == nil {
			t.Errorf("New(%d, %d) succeeded", sz[0], sz[1])
		}
	}
}

func TestChangeXFovClamps(t *testing.T) {
	c := newTestCamera(t)
	tests := []struct {
		in, want float64
	}{
		{-1, MinFOV},
		{0, MinFOV},
		{MinFOV / 2, MinFOV},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, MaxFOV},
		{10, MaxFOV},
	}
	for _, tt := range tests {
		if err := c.ChangeXFovTo(tt.in); err != nil {
			t.Fatalf("ChangeXFovTo(%v): %v", tt.in, err)
		}
		if c.XFov() != tt.want {
			t.Errorf("ChangeXFovTo(%v) -> %v, want %v", tt.in, c.XFov(), tt.want)
		}
		if c.XFov() < MinFOV || c.XFov() > MaxFOV {
			t.Errorf("fov %v escaped range", c.XFov())
		}
		wantX := ViewDistance * math.Tan(c.XFov()/2)
		if math.Abs(c.XLimit()-wantX)/wantX > eps {
			t.Errorf("x limit %v, want %v", c.XLimit(), wantX)
		}
		if c.YLimit() != c.XLimit()*c.AspectRatio() {
			t.Errorf("y limit %v not tied to aspect", c.YLimit())
		}
	}
}

func TestChangeXFovBy(t *testing.T) {
	c := newTestCamera(t)
	step := math.Pi / 100
	if err := c.ChangeXFovBy(step); err != nil {
		t.Fatal(err)
	}
	if got, want := c.XFov(), float64(DefaultFOV)+step; got != want {
		t.Errorf("fov = %v, want %v", got, want)
	}
	for i := 0; i < 200; i++ {
		c.ChangeXFovBy(-step)
	}
	if c.XFov() != MinFOV {
		t.Errorf("fov = %v after shrinking, want %v", c.XFov(), MinFOV)
	}
}

func TestLinkedYFov(t *testing.T) {
	c := newTestCamera(t)
	wantY := 2 * math.Atan(math.Tan(DefaultFOV/2)*720/1280)
	if math.Abs(c.YFov()-wantY) > eps {
		t.Errorf("y fov = %v, want %v", c.YFov(), wantY)
	}
}

func TestIndependentYFov(t *testing.T) {
	c := newTestCamera(t)
	if err := c.ChangeYFovTo(math.Pi / 2); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.YLimit()-ViewDistance) > eps {
		t.Errorf("y limit = %v, want %v", c.YLimit(), ViewDistance)
	}
	// Changing the horizontal FOV must leave the measured vertical limit alone.
	c.ChangeXFovTo(math.Pi / 4)
	if math.Abs(c.YLimit()-ViewDistance) > eps {
		t.Errorf("y limit moved to %v", c.YLimit())
	}
	if err := c.ChangeYFovBy(10); err != nil {
		t.Fatal(err)
	}
	if c.YFov() != MaxFOV {
		t.Errorf("y fov = %v, want clamp %v", c.YFov(), MaxFOV)
	}
	c.LinkYFov()
	if c.YLimit() != c.XLimit()*c.AspectRatio() {
		t.Errorf("relinked y limit = %v", c.YLimit())
	}
}

func TestSetWindowSize(t *testing.T) {
	c := newTestCamera(t)
	x := c.XLimit()
	if err := c.SetWindowSize(1000, 1000); err != nil {
		t.Fatal(err)
	}
	if c.XLimit() != x || c.YLimit() != x {
		t.Errorf("square window limits = %v, %v", c.XLimit(), c.YLimit())
	}
	if err := c.SetWindowSize(0, 10); err == nil {
		t.Error("SetWindowSize(0, 10) succeeded")
	}
}

func TestMove(t *testing.T) {
	c := newTestCamera(t)
	c.Move(mathutil.Vec3{0.5, 0, 0.5})
	c.Move(mathutil.Vec3{0, -1, 0})
	if c.Position() != (mathutil.Vec3{0.5, -1, 0.5}) {
		t.Errorf("position = %v", c.Position())
	}
	checkViewPlane(t, c)
	c.MoveTo(mathutil.Vec3{7, 8, 9})
	if c.Position() != (mathutil.Vec3{7, 8, 9}) {
		t.Errorf("position = %v", c.Position())
	}
	checkViewPlane(t, c)
}

func TestRotate(t *testing.T) {
	c := newTestCamera(t)
	c.MoveTo(mathutil.Vec3{1, 0, 1})
	c.RotateTo(math.Pi / 2)
	if !c.Looking().ApproxEqual(mathutil.UnitX, 1e-15) {
		t.Errorf("looking = %v, want +X", c.Looking())
	}
	checkViewPlane(t, c)
	if !c.ViewPlane().Point().ApproxEqual(mathutil.Vec3{11, 0, 1}, 1e-12) {
		t.Errorf("view plane point = %v", c.ViewPlane().Point())
	}

	c.Rotate(math.Pi / 2)
	if c.Yaw() != math.Pi {
		t.Errorf("yaw = %v", c.Yaw())
	}
	if !c.Looking().ApproxEqual(mathutil.Vec3{0, 0, -1}, 1e-15) {
		t.Errorf("looking = %v, want -Z", c.Looking())
	}
	checkViewPlane(t, c)
}

func TestPitch(t *testing.T) {
	c := newTestCamera(t)
	c.PitchTo(math.Pi / 4)
	want := mathutil.Vec3{0, math.Sin(math.Pi / 4), math.Cos(math.Pi / 4)}
	if !c.Looking().ApproxEqual(want, 1e-15) {
		t.Errorf("looking = %v, want %v", c.Looking(), want)
	}
	checkViewPlane(t, c)

	c.PitchBy(10)
	if c.Pitch() != MaxPitch {
		t.Errorf("pitch = %v, want clamp %v", c.Pitch(), MaxPitch)
	}
	c.PitchTo(-10)
	if c.Pitch() != -MaxPitch {
		t.Errorf("pitch = %v, want clamp %v", c.Pitch(), -MaxPitch)
	}
	if l := c.Looking().Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("looking length = %v", l)
	}
}

func TestBasis(t *testing.T) {
	c := newTestCamera(t)
	r, u, f := c.Basis()
	if !r.ApproxEqual(mathutil.UnitX, 0) || !u.ApproxEqual(mathutil.UnitY, 0) || f != mathutil.UnitZ {
		t.Errorf("default basis = %v %v %v", r, u, f)
	}

	c.RotateTo(0.7)
	c.PitchTo(-0.3)
	r, u, f = c.Basis()
	ref := mgl64.Rotate3DY(0.7).Mul3(mgl64.Rotate3DX(0.3))
	for i, got := range []mathutil.Vec3{r, u, f} {
		want := mathutil.Vec3(ref.Col(i))
		if !got.ApproxEqual(want, 1e-12) {
			t.Errorf("basis[%d] = %v, mathgl %v", i, got, want)
		}
	}
}

func TestApply(t *testing.T) {
	c := newTestCamera(t)
	fov := c.XFov()
	step := math.Pi / 100
	err := c.Apply(Command{
		Move: mathutil.Vec3{0, 0, 2},
		Yaw:  math.Pi / 2,
		FOV:  step,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Position() != (mathutil.Vec3{0, 0, 2}) {
		t.Errorf("world move position = %v", c.Position())
	}
	if c.XFov() != fov+step {
		t.Errorf("fov = %v", c.XFov())
	}

	// Local move walks along the heading, which is now +X.
	c.Apply(Command{Move: mathutil.Vec3{0, 0, 3}, Local: true})
	if !c.Position().ApproxEqual(mathutil.Vec3{3, 0, 2}, 1e-12) {
		t.Errorf("local move position = %v", c.Position())
	}
	checkViewPlane(t, c)

	if !(Command{}).IsZero() || (Command{Yaw: 1}).IsZero() {
		t.Error("IsZero wrong")
	}
}

func TestResetSequence(t *testing.T) {
	c := newTestCamera(t)
	want := c.Clone()
	c.Apply(Command{Move: mathutil.Vec3{4, 5, 6}, FOV: 0.4})
	c.MoveTo(mathutil.Vec3{})
	c.ChangeXFovTo(DefaultFOV)
	if c.Position() != want.Position() || c.XFov() != want.XFov() ||
		c.XLimit() != want.XLimit() || c.YLimit() != want.YLimit() {
		t.Errorf("reset camera %v, want %v", c, want)
	}
	checkViewPlane(t, c)
}

func TestCloneIsIndependent(t *testing.T) {
	c := newTestCamera(t)
	cp := c.Clone()
	c.Move(mathutil.Vec3{1, 1, 1})
	c.RotateTo(1)
	if cp.Position() != (mathutil.Vec3{}) || cp.Looking() != mathutil.UnitZ {
		t.Errorf("clone followed original: %v", cp)
	}
	checkViewPlane(t, cp)
}

func TestFrustum(t *testing.T) {
	c := newTestCamera(t)
	f := c.Frustum(100)
	if f.SphereOutside(mathutil.Vec3{0, 0, 50}, 1) {
		t.Error("sphere ahead culled")
	}
	if !f.SphereOutside(mathutil.Vec3{0, 0, -20}, 5) {
		t.Error("sphere behind kept")
	}
}
