package pipeline

import (
	"curve-points/internal/debug/timing"
	"curve-points/internal/export"
	"curve-points/internal/raster"
)

// Loader turns an input path into a source buffer. Implementations report
// imageio.ErrNotFound and imageio.ErrMalformed through error wrapping.
type Loader interface {
	Load(path string) (*raster.Buffer, error)
}

// Result summarises a completed run.
type Result struct {
	Rows     int
	Cols     int
	Channels int
	Stages   []StageMetrics
	Points   []export.Point

	// Timings lists load, every step and export in completion order.
	Timings []timing.Sample

	// ExportErr holds a failed point file write. The run itself still
	// counts as complete.
	ExportErr error
	// PlotErr holds a failed scatter plot render.
	PlotErr error
}

// Stage returns the metrics of the named stage.
func (r *Result) Stage(name string) (StageMetrics, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageMetrics{}, false
}
