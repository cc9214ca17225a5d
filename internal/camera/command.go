package camera

import "wireframe-renderer/internal/mathutil"

// Command is one frame's worth of input. Zero fields leave the camera alone.
type Command struct {
	Move  mathutil.Vec3 // translation
	Yaw   float64       // radians added to the yaw
	Pitch float64       // radians added to the pitch
	FOV   float64       // radians added to the horizontal FOV

	// Local moves relative to the current yaw heading: Move[2] walks along
	// the horizontal looking direction and Move[0] strafes.
	Local bool
}

// IsZero reports whether applying cmd would change nothing.
func (cmd Command) IsZero() bool {
	return cmd == Command{}
}

// Apply runs cmd against the camera: FOV first, then orientation, then movement.
func (c *Camera) Apply(cmd Command) error {
	if cmd.FOV != 0 {
		if err := c.ChangeXFovBy(cmd.FOV); err != nil {
			return err
		}
	}
	if cmd.Yaw != 0 {
		c.Rotate(cmd.Yaw)
	}
	if cmd.Pitch != 0 {
		c.PitchBy(cmd.Pitch)
	}
	if cmd.Move != (mathutil.Vec3{}) {
		delta := cmd.Move
		if cmd.Local {
			delta = mathutil.RotY(c.yaw).MulVec3(delta)
		}
		c.Move(delta)
	}
	return nil
}
