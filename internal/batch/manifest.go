package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index    int        `json:"index"`
	Image    string     `json:"image"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	XFov     float64    `json:"x_fov"`
	YFov     float64    `json:"y_fov"`
	Segments int        `json:"segments"`
	Culled   int        `json:"culled"`
	Skipped  int        `json:"skipped"`
	Error    string     `json:"error,omitempty"`
}

// WriteManifest writes the manifest for results to path. Image paths are
// relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img, err := filepath.Rel(dir, r.Path)
		if err != nil {
			img = r.Path
		}
		entries[i] = ManifestEntry{
			Index:    r.Index,
			Image:    filepath.ToSlash(img),
			Position: r.Camera.Position,
			Yaw:      r.Camera.Yaw,
			Pitch:    r.Camera.Pitch,
			XFov:     r.Camera.XFov,
			YFov:     r.Camera.YFov,
			Segments: r.Stats.Segments,
			Culled:   r.Stats.Culled,
			Skipped:  r.Stats.Skipped,
			Error:    r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
