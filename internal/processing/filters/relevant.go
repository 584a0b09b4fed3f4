package filters

import (
	"context"
	"fmt"

	"curve-points/internal/raster"
)

// RelevantPoints keeps the black pixels that sit on the top edge of a
// shape with a horizontal neighbour on exactly one side.
type RelevantPoints struct {
	classifier raster.Classifier
}

func NewRelevantPoints(classifier raster.Classifier) *RelevantPoints {
	return &RelevantPoints{classifier: classifier}
}

func (r *RelevantPoints) Name() string {
	return "relevant_points"
}

func (r *RelevantPoints) Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if input.Empty() {
		return nil, raster.ErrEmptyBuffer
	}

	dst, err := raster.NewBinary(input.Rows(), input.Cols())
	if err != nil {
		return nil, fmt.Errorf("destination buffer creation failed: %w", err)
	}

	for row := 0; row < input.Rows(); row++ {
		for col := 0; col < input.Cols(); col++ {
			if r.classifier.IsBlack(input, row, col) && r.IsRelevant(input, row, col) {
				dst.SetBlack(row, col)
			}
		}
	}

	return dst, nil
}

// IsRelevant tests the neighbour pattern only; the pixel itself may be
// either colour.
func (r *RelevantPoints) IsRelevant(b *raster.Buffer, row, col int) bool {
	c := r.classifier
	left := c.HasNeighbourLeft(b, row, col)
	right := c.HasNeighbourRight(b, row, col)

	return c.HasNeighbourBelow(b, row, col) &&
		!c.HasNeighbourAbove(b, row, col) &&
		left != right
}
