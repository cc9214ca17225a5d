// Package config loads render settings from a JSON file and applies CLI
// overrides.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"wireframe-renderer/internal/projector"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/render"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	Scene     string `json:"scene"`
	OutputDir string `json:"output_dir"`

	// Output
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Render settings
	Supersample   int     `json:"supersample"`
	StrokeWidth   float64 `json:"stroke_width"`
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	Basis         string  `json:"basis"`
	HideBackEdges bool    `json:"hide_back_edges"`
	FarDistance   float64 `json:"far_distance"`
	ClipMargin    float64 `json:"clip_margin"`
	Workers       int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene     string
	OutputDir string
	Format    string
	Workers   int
	Width     int
	Height    int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.Scene != "" && !filepath.IsAbs(c.Scene) {
		c.Scene = filepath.Join(c.BaseDir, c.Scene)
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "frames")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}

	// Defaults for render settings
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 1.5
	}
	if c.Foreground == "" {
		c.Foreground = "#ffffff"
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.Basis == "" {
		c.Basis = "world"
	}
	if c.ClipMargin <= 0 {
		c.ClipMargin = render.DefaultOptions().ClipMargin
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if !slices.Contains(raster.Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q (want one of %s)", c.Format, strings.Join(raster.Formats, ", "))
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("config: foreground: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if _, err := ParseBasis(c.Basis); err != nil {
		return err
	}
	if c.FarDistance < 0 {
		return fmt.Errorf("config: negative far_distance %g", c.FarDistance)
	}
	return nil
}

// RenderOptions converts the settings into per-frame render options.
// Call Validate first; unparseable values fall back to defaults.
func (c *Config) RenderOptions() render.Options {
	basis, _ := ParseBasis(c.Basis)
	return render.Options{
		Basis:         basis,
		HideBackEdges: c.HideBackEdges,
		FarDistance:   c.FarDistance,
		ClipMargin:    c.ClipMargin,
	}
}

// Colors returns the parsed foreground and background colours.
func (c *Config) Colors() (fg, bg color.NRGBA) {
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		fg = color.NRGBA{255, 255, 255, 255}
	}
	bg, err = ParseColor(c.Background)
	if err != nil {
		bg = color.NRGBA{0, 0, 0, 255}
	}
	return fg, bg
}

// ParseBasis maps "world" or "camera" to a projector basis.
func ParseBasis(s string) (projector.Basis, error) {
	switch strings.ToLower(s) {
	case "", "world":
		return projector.BasisWorld, nil
	case "camera":
		return projector.BasisCamera, nil
	}
	return projector.BasisWorld, fmt.Errorf("config: unknown basis %q", s)
}

// ParseColor reads #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			hi, ok1 := hexDigit(hex[2*i])
			lo, ok2 := hexDigit(hex[2*i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
			}
			v[i] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
	}
	return color.NRGBA{v[0], v[1], v[2], v[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
