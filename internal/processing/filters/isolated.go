package filters

import (
	"context"

	"curve-points/internal/raster"
)

// minNeighbours is the number of black 4-neighbours a pixel needs to
// survive RemoveIsolated.
const minNeighbours = 2

// RemoveIsolated whitens pixels with fewer than two black direct
// neighbours. Neighbours are always read from the unmodified input.
type RemoveIsolated struct {
	classifier raster.Classifier
}

func NewRemoveIsolated(classifier raster.Classifier) *RemoveIsolated {
	return &RemoveIsolated{classifier: classifier}
}

func (r *RemoveIsolated) Name() string {
	return "isolated_filter"
}

func (r *RemoveIsolated) Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if input.Empty() {
		return nil, raster.ErrEmptyBuffer
	}

	dst := input.Clone()
	for row := 0; row < input.Rows(); row++ {
		for col := 0; col < input.Cols(); col++ {
			if r.classifier.NeighbourCount(input, row, col) < minNeighbours {
				dst.Set(row, col, raster.MaxSample)
			}
		}
	}

	return dst, nil
}
