package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/projector"
	"wireframe-renderer/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in demo scene)")
	frame := flag.Int("frame", 0, "Replay this many script commands before inspecting")
	basis := flag.String("basis", "world", "Screen basis: world or camera")
	flag.Parse()

	s := scene.Default()
	if *scenePath != "" {
		var err error
		s, err = scene.Load(*scenePath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	cam, err := s.NewCamera()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *frame > len(s.Script) {
		fmt.Printf("Error: frame %d past end of script (%d commands)\n", *frame, len(s.Script))
		os.Exit(1)
	}
	for _, cmd := range s.Script[:*frame] {
		if err := cam.Apply(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	pr := projector.New(s.Width, s.Height)
	if *basis == "camera" {
		pr.Basis = projector.BasisCamera
	}

	right, up, forward := cam.Basis()
	fmt.Printf("Window: %dx%d, Frame: %d\n", s.Width, s.Height, *frame)
	fmt.Println(cam)
	fmt.Printf("  Looking: (%.4f, %.4f, %.4f)\n", forward[0], forward[1], forward[2])
	fmt.Printf("  Right:   (%.4f, %.4f, %.4f)  Up: (%.4f, %.4f, %.4f)\n",
		right[0], right[1], right[2], up[0], up[1], up[2])
	fmt.Printf("  View %s\n", cam.ViewPlane())
	fmt.Printf("  FOV: x=%.5f y=%.5f  Limits: x=%.5f y=%.5f\n", cam.XFov(), cam.YFov(), cam.XLimit(), cam.YLimit())

	for i, c := range s.Cuboids {
		w, h, l := c.Size()
		fmt.Printf("Cuboid[%d]: origin=%v size=%gx%gx%g\n", i, c.Origin(), w, h, l)
		fmt.Printf("  Sphere: center=%v radius=%.4f\n", c.Center(), c.Radius())
		for j, p := range c.Corners() {
			fmt.Printf("  corner[%d] %v\n", j, p)
		}
		for f := scene.FaceFront; f <= scene.FaceBack; f++ {
			fmt.Printf("  %-6s %s\n", f, c.Face(f))
		}
		fmt.Printf("  Visible faces: %v\n", c.FacesVisibleFrom(cam.Position()))

		segs, err := pr.Cuboid(cam, c)
		for _, seg := range segs {
			fmt.Printf("  edge[%2d] (%.1f, %.1f) -> (%.1f, %.1f)\n", seg.Edge, seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
		}
		if err != nil {
			var pe *geom.ParallelError
			if errors.As(err, &pe) {
				fmt.Printf("  degenerate: %v\n", err)
			} else {
				fmt.Printf("  error: %v\n", err)
			}
		}
	}

	pairs := s.Collisions()
	fmt.Printf("Collisions: %d\n", len(pairs))
	for _, p := range pairs {
		fmt.Printf("  %d <-> %d\n", p[0], p[1])
	}
}
