package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/control"
	"wireframe-renderer/internal/projector"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

var lineColor = color.RGBA{255, 255, 255, 255}

type game struct {
	scene *scene.Scene
	cam   *camera.Camera
	opts  render.Options

	lastX, lastY int
	dragging     bool
}

func newGame(s *scene.Scene, opts render.Options) (*game, error) {
	cam, err := s.NewCamera()
	if err != nil {
		return nil, err
	}
	return &game{scene: s, cam: cam, opts: opts}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := control.Reset(g.cam); err != nil {
			return err
		}
	}
	return control.Step(g.cam, g.input())
}

func (g *game) input() control.Input {
	in := control.Input{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW),
		Back:      ebiten.IsKeyPressed(ebiten.KeyS),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		Down:      ebiten.IsKeyPressed(ebiten.KeyQ),
		Up:        ebiten.IsKeyPressed(ebiten.KeyE),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		LookUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		LookDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	_, in.Wheel = ebiten.Wheel()

	x, y := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if held && g.dragging {
		in.DragX = float64(x - g.lastX)
		in.DragY = float64(y - g.lastY)
	}
	g.dragging = held
	g.lastX, g.lastY = x, y
	return in
}

func (g *game) Draw(screen *ebiten.Image) {
	st := render.Frame(screenSurface{screen}, g.cam, g.scene.Cuboids, g.opts)
	ebitenutil.DebugPrint(screen, control.HUD(g.cam, g.scene))

	_, h := g.cam.WindowSize()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Segments: %d Culled: %d Skipped: %d", st.Segments, st.Culled, st.Skipped), 0, h-16)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cam.WindowSize()
	return w, h
}

// screenSurface draws segments straight onto the ebiten screen.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) DrawLine(a, b projector.Point) {
	vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, lineColor, true)
}

func (s screenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}
