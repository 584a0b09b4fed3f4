package threshold

import (
	"context"
	"fmt"

	"curve-points/internal/raster"
)

// Binarizer maps every pixel to pure black or pure white by comparing its
// channel sum with the classifier threshold.
type Binarizer struct {
	classifier raster.Classifier
}

func NewBinarizer(classifier raster.Classifier) *Binarizer {
	return &Binarizer{classifier: classifier}
}

func (b *Binarizer) Name() string {
	return "black_white"
}

func (b *Binarizer) Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if input.Empty() {
		return nil, raster.ErrEmptyBuffer
	}

	return b.binarize(input)
}

func (b *Binarizer) binarize(src *raster.Buffer) (*raster.Buffer, error) {
	dst, err := raster.NewBinary(src.Rows(), src.Cols())
	if err != nil {
		return nil, fmt.Errorf("destination buffer creation failed: %w", err)
	}

	for row := 0; row < src.Rows(); row++ {
		for col := 0; col < src.Cols(); col++ {
			if b.classifier.IsBlack(src, row, col) {
				dst.SetBlack(row, col)
			}
		}
	}

	return dst, nil
}
