package pipeline

import (
	"fmt"
	"time"

	"curve-points/internal/raster"
)

// StageMetrics describes how one stage changed the set of black pixels.
type StageMetrics struct {
	Name     string
	Black    int
	Removed  int
	Added    int
	Duration time.Duration
}

// CalculateStageMetrics compares the black pixels of a stage's input and
// output. Stages after binarization only ever remove pixels, so Added
// should be zero for them.
func CalculateStageMetrics(name string, input, output *raster.Buffer, classifier raster.Classifier) (StageMetrics, error) {
	if input.Empty() || output.Empty() {
		return StageMetrics{}, raster.ErrEmptyBuffer
	}
	if !input.SameSize(output) {
		return StageMetrics{}, fmt.Errorf("%w: input %dx%d, output %dx%d", raster.ErrSizeMismatch,
			input.Cols(), input.Rows(), output.Cols(), output.Rows())
	}

	m := StageMetrics{Name: name}
	for row := 0; row < output.Rows(); row++ {
		for col := 0; col < output.Cols(); col++ {
			before := classifier.IsBlack(input, row, col)
			after := classifier.IsBlack(output, row, col)
			switch {
			case after:
				m.Black++
				if !before {
					m.Added++
				}
			case before:
				m.Removed++
			}
		}
	}

	return m, nil
}

func (m StageMetrics) fields() map[string]interface{} {
	return map[string]interface{}{
		"stage":       m.Name,
		"black":       m.Black,
		"removed":     m.Removed,
		"added":       m.Added,
		"duration_ms": m.Duration.Milliseconds(),
	}
}
