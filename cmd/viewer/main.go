package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"wireframe-renderer/internal/projector"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in demo scene)")
	far := flag.Float64("far", 0, "Cull cuboids beyond this distance (0: off)")
	basis := flag.String("basis", "world", "Screen basis: world or camera")
	hide := flag.Bool("hide-back-edges", false, "Hide edges shared by two back faces")
	flag.Parse()

	s := scene.Default()
	if *scenePath != "" {
		var err error
		s, err = scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	opts := render.DefaultOptions()
	opts.FarDistance = *far
	opts.HideBackEdges = *hide
	switch *basis {
	case "world":
		opts.Basis = projector.BasisWorld
	case "camera":
		opts.Basis = projector.BasisCamera
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown basis %q\n", *basis)
		os.Exit(1)
	}

	g, err := newGame(s, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("Wireframe viewer")
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
