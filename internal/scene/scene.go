// Package scene holds the world being viewed: a flat list of cuboids, the
// initial camera setup and an optional per-frame command script.
package scene

import (
	"math"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/mathutil"
)

// CameraSetup is the camera's starting state. Angles are radians.
type CameraSetup struct {
	Position mathutil.Vec3
	FOV      float64
	Yaw      float64
	Pitch    float64
}

// Scene is everything needed to render a sequence of frames.
type Scene struct {
	Width   int
	Height  int
	Camera  CameraSetup
	Cuboids []*Cuboid

	// Script holds one command per frame.
	Script []camera.Command
}

// NewCamera builds a camera in the scene's starting state.
func (s *Scene) NewCamera() (*camera.Camera, error) {
	c, err := camera.New(s.Width, s.Height, s.Camera.FOV, s.Camera.Position)
	if err != nil {
		return nil, err
	}
	c.RotateTo(s.Camera.Yaw)
	c.PitchTo(s.Camera.Pitch)
	return c, nil
}

// Collisions returns index pairs (i < j) of overlapping cuboids.
func (s *Scene) Collisions() [][2]int {
	var out [][2]int
	for i := range s.Cuboids {
		for j := i + 1; j < len(s.Cuboids); j++ {
			if s.Cuboids[i].CollidesWith(s.Cuboids[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Default returns the demo scene: five 10-unit cubes in front of a camera
// at the origin, and a short walk-and-turn script.
func Default() *Scene {
	s := &Scene{
		Width:  1280,
		Height: 720,
		Camera: CameraSetup{FOV: camera.DefaultFOV},
	}
	for _, o := range []mathutil.Vec3{
		{-5, -5, 15},
		{-5, -5, 50},
		{-25, -5, 50},
		{-5, -25, 50},
		{-5, -5, 250},
	} {
		c, _ := NewCuboid(o, 10, 10, 10)
		s.Cuboids = append(s.Cuboids, c)
	}

	s.Script = append(s.Script, repeat(camera.Command{Move: mathutil.Vec3{0, 0, 0.5}}, 40)...)
	s.Script = append(s.Script, repeat(camera.Command{Yaw: math.Pi / 180}, 30)...)
	s.Script = append(s.Script, repeat(camera.Command{FOV: -math.Pi / 100}, 20)...)
	s.Script = append(s.Script, repeat(camera.Command{Move: mathutil.Vec3{0.5, 0, 0}, Local: true}, 20)...)
	return s
}

func repeat(cmd camera.Command, n int) []camera.Command {
	out := make([]camera.Command, n)
	for i := range out {
		out[i] = cmd
	}
	return out
}
