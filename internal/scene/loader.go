package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/mathutil"
)

// sceneFile matches the JSON schema of a scene file. Angles are degrees.
type sceneFile struct {
	Window struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"window"`
	Camera struct {
		Position [3]float64 `json:"position"`
		FOV      *float64   `json:"fov"`
		Yaw      float64    `json:"yaw"`
		Pitch    float64    `json:"pitch"`
	} `json:"camera"`
	Cuboids []struct {
		Origin [3]float64 `json:"origin"`
		Size   [3]float64 `json:"size"`
	} `json:"cuboids"`
	Script []struct {
		Move   [3]float64 `json:"move"`
		Yaw    float64    `json:"yaw"`
		Pitch  float64    `json:"pitch"`
		FOV    float64    `json:"fov"`
		Local  bool       `json:"local"`
		Repeat int        `json:"repeat"`
	} `json:"script"`
}

// Load reads a scene JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from JSON. A missing window defaults to 1280x720
// and a missing fov to 60°.
func Parse(data []byte) (*Scene, error) {
	var f sceneFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	s := &Scene{
		Width:  f.Window.Width,
		Height: f.Window.Height,
		Camera: CameraSetup{
			Position: mathutil.Vec3(f.Camera.Position),
			FOV:      camera.DefaultFOV,
			Yaw:      mathutil.Deg2Rad(f.Camera.Yaw),
			Pitch:    mathutil.Deg2Rad(f.Camera.Pitch),
		},
	}
	if s.Width == 0 && s.Height == 0 {
		s.Width, s.Height = 1280, 720
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("window %dx%d", s.Width, s.Height)
	}
	if f.Camera.FOV != nil {
		s.Camera.FOV = mathutil.Deg2Rad(*f.Camera.FOV)
	}

	for i, cs := range f.Cuboids {
		c, err := NewCuboid(mathutil.Vec3(cs.Origin), cs.Size[0], cs.Size[1], cs.Size[2])
		if err != nil {
			return nil, fmt.Errorf("cuboid %d: %w", i, err)
		}
		s.Cuboids = append(s.Cuboids, c)
	}

	for i, st := range f.Script {
		n := st.Repeat
		if n == 0 {
			n = 1
		}
		if n < 0 {
			return nil, fmt.Errorf("script step %d: negative repeat %d", i, n)
		}
		s.Script = append(s.Script, repeat(camera.Command{
			Move:  mathutil.Vec3(st.Move),
			Yaw:   mathutil.Deg2Rad(st.Yaw),
			Pitch: mathutil.Deg2Rad(st.Pitch),
			FOV:   mathutil.Deg2Rad(st.FOV),
			Local: st.Local,
		}, n)...)
	}
	return s, nil
}
