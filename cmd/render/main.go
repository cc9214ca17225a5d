package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in demo scene)")
	testN := flag.Int("test", 0, "Render only first N frames for testing")
	frame := flag.Int("frame", -1, "Render only this frame index")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: ./frames)")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	width := flag.Int("width", 0, "Override the scene window width")
	height := flag.Int("height", 0, "Override the scene window height")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:     *scenePath,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
		Width:     *width,
		Height:    *height,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load scene
	s := scene.Default()
	if cfg.Scene != "" {
		var err error
		s, err = scene.Load(cfg.Scene)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.Height > 0 {
		s.Height = cfg.Height
	}

	for _, pair := range s.Collisions() {
		fmt.Fprintf(os.Stderr, "Warning: cuboids %d and %d overlap\n", pair[0], pair[1])
	}

	jobs, err := batch.Frames(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying script: %v\n", err)
		os.Exit(1)
	}

	// Filter by frame
	if *frame >= 0 {
		if *frame >= len(jobs) {
			fmt.Fprintf(os.Stderr, "Error: frame %d out of range (0-%d)\n", *frame, len(jobs)-1)
			os.Exit(1)
		}
		jobs = jobs[*frame : *frame+1]
	}

	// Limit for testing
	if *testN > 0 && *testN < len(jobs) {
		jobs = jobs[:*testN]
	}

	// Print summary
	mode := ""
	if *frame >= 0 {
		mode = fmt.Sprintf(" (Frame %d)", *frame)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Wireframe renderer → %s%s\n", cfg.Format, mode)
	fmt.Printf("Frames: %d, Cuboids: %d, Size: %dx%d, Workers: %d\n", len(jobs), len(s.Cuboids), s.Width, s.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	fg, bg := cfg.Colors()
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Supersample: cfg.Supersample,
		Stroke:      cfg.StrokeWidth,
		Foreground:  fg,
		Background:  bg,
		Render:      cfg.RenderOptions(),
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg, s.Cuboids, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed, skipped := 0, 0, 0
	var errors []batch.Result
	for _, r := range results {
		skipped += r.Stats.Skipped
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))
	if skipped > 0 {
		fmt.Printf("Degenerate corners skipped: %d\n", skipped)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
