// Package batch renders camera snapshots to image files on a worker pool.
package batch

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

const progressInterval = 2 * time.Second

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      string
	Supersample int
	Stroke      float64
	Foreground  color.NRGBA
	Background  color.NRGBA
	Render      render.Options
	Workers     int
}

// Job is one frame to render. Camera must not be shared with another job.
type Job struct {
	Index  int
	Camera *camera.Camera
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Path    string
	Camera  camera.State
	Stats   render.Stats
	Success bool
	Error   string
}

// Frames replays the scene script from the starting camera and returns one
// job per state: the initial view followed by one per command.
func Frames(s *scene.Scene) ([]Job, error) {
	cam, err := s.NewCamera()
	if err != nil {
		return nil, fmt.Errorf("batch: camera: %w", err)
	}

	jobs := make([]Job, 0, len(s.Script)+1)
	jobs = append(jobs, Job{Index: 0, Camera: cam.Clone()})
	for i, cmd := range s.Script {
		if err := cam.Apply(cmd); err != nil {
			return nil, fmt.Errorf("batch: script step %d: %w", i, err)
		}
		jobs = append(jobs, Job{Index: i + 1, Camera: cam.Clone()})
	}
	return jobs, nil
}

// Run renders every job and returns results in job order.
func Run(cfg Config, cuboids []*scene.Cuboid, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderJob(cfg, cuboids, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// FrameName is the file name of frame index in the given format.
func FrameName(index int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", index, format)
}

func renderJob(cfg Config, cuboids []*scene.Cuboid, job Job) Result {
	res := Result{
		Index:  job.Index,
		Path:   filepath.Join(cfg.OutputDir, FrameName(job.Index, cfg.Format)),
		Camera: job.Camera.State(),
	}

	w, h := job.Camera.WindowSize()
	canvas := raster.NewCanvas(w, h, cfg.Supersample, cfg.Stroke, cfg.Foreground, cfg.Background)
	res.Stats = render.Frame(canvas, job.Camera, cuboids, cfg.Render)

	if err := raster.Save(res.Path, canvas.Image()); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
