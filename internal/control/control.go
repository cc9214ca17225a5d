// Package control turns one frame of viewer input into a camera command and
// formats the viewer's status overlay. It has no window dependency.
package control

import (
	"fmt"
	"math"
	"strings"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/scene"
)

const (
	MoveStep  = 0.5
	TurnStep  = math.Pi / 90  // per frame while an arrow key is held
	MouseTurn = 0.005         // radians per pixel of drag
	FOVStep   = math.Pi / 100 // per wheel notch
)

// Input is the state of the controls for one frame.
type Input struct {
	Forward, Back bool // W, S
	Left, Right   bool // A, D
	Down, Up      bool // Q, E

	TurnLeft, TurnRight bool // arrow keys
	LookUp, LookDown    bool

	// Drag is the mouse movement in pixels while the rotate button is held.
	DragX, DragY float64

	// Wheel is the vertical scroll; positive scrolls up and narrows the view.
	Wheel float64
}

// Command maps in to a camera command. Movement is along world axes.
func Command(in Input) camera.Command {
	var cmd camera.Command
	if in.Right {
		cmd.Move[0] += MoveStep
	}
	if in.Left {
		cmd.Move[0] -= MoveStep
	}
	if in.Forward {
		cmd.Move[2] += MoveStep
	}
	if in.Back {
		cmd.Move[2] -= MoveStep
	}
	if in.Down {
		cmd.Move[1] -= MoveStep
	}
	if in.Up {
		cmd.Move[1] += MoveStep
	}

	if in.TurnRight {
		cmd.Yaw += TurnStep
	}
	if in.TurnLeft {
		cmd.Yaw -= TurnStep
	}
	if in.LookUp {
		cmd.Pitch += TurnStep
	}
	if in.LookDown {
		cmd.Pitch -= TurnStep
	}
	cmd.Yaw += in.DragX * MouseTurn
	cmd.Pitch -= in.DragY * MouseTurn

	cmd.FOV = FOVStep * -in.Wheel
	return cmd
}

// Step applies in to cam and snaps the position to hundredths so repeated
// half-unit steps do not drift.
func Step(cam *camera.Camera, in Input) error {
	if err := cam.Apply(Command(in)); err != nil {
		return err
	}
	p := cam.Position()
	for i := range p {
		p[i] = math.Round(p[i]*100) / 100
	}
	cam.MoveTo(p)
	return nil
}

// Reset returns the camera to the origin with the default horizontal FOV.
// Orientation is kept.
func Reset(cam *camera.Camera) error {
	cam.MoveTo(mathutil.Vec3{})
	return cam.ChangeXFovTo(camera.DefaultFOV)
}

// HUD is the status overlay text, one line per row.
func HUD(cam *camera.Camera, s *scene.Scene) string {
	var b strings.Builder
	vp := cam.ViewPlane()
	fmt.Fprintf(&b, "View from: %s\n", vec(cam.Position()))
	fmt.Fprintf(&b, "View %s\n", vp)
	fmt.Fprintf(&b, "Plane center %s\n", vec(vp.Point()))
	if len(s.Cuboids) > 0 {
		fmt.Fprintf(&b, "%s\n", vec(s.Cuboids[0].Corner(0)))
	}
	fmt.Fprintf(&b, "\nYaw: %.1f° Pitch: %.1f°\n",
		mathutil.Rad2Deg(mathutil.WrapAngle(cam.Yaw())), mathutil.Rad2Deg(cam.Pitch()))
	fmt.Fprintf(&b, "X FOV: %.5f\n", cam.XFov())
	fmt.Fprintf(&b, "X limit: %.5f\n", cam.XLimit())
	fmt.Fprintf(&b, "Y limit: %.5f\n", cam.YLimit())
	return b.String()
}

func vec(v mathutil.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
