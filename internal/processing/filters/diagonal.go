package filters

import (
	"context"
	"fmt"

	"curve-points/internal/raster"
)

// DefaultLineLength is the longest diagonal run StripDiagonals erases.
const DefaultLineLength = 4

// StripDiagonals erases short 45 degree runs hanging below each black
// anchor pixel, in both the down-right and down-left direction. Anchors
// are scanned in row-major order over the working copy, so a pixel erased
// by an earlier anchor is no longer an anchor itself.
type StripDiagonals struct {
	classifier raster.Classifier
	length     int
}

func NewStripDiagonals(classifier raster.Classifier, length int) *StripDiagonals {
	return &StripDiagonals{classifier: classifier, length: length}
}

func (s *StripDiagonals) Name() string {
	return "line_free"
}

func (s *StripDiagonals) Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if input.Empty() {
		return nil, raster.ErrEmptyBuffer
	}
	if s.length < 1 {
		return nil, fmt.Errorf("invalid line length: %d", s.length)
	}

	dst := input.Clone()
	n := s.length

	// Anchors stay n pixels clear of the bottom, left and right edges so
	// every walk remains inside the buffer.
	for row := 0; row < dst.Rows()-n; row++ {
		for col := n; col < dst.Cols()-n; col++ {
			if !s.classifier.IsBlack(dst, row, col) {
				continue
			}
			s.erase(dst, row, col, 1)
			s.erase(dst, row, col, -1)
		}
	}

	return dst, nil
}

// erase walks from the anchor one row down per step, moving dir columns,
// and whitens black pixels until it meets a white one or has taken
// length steps.
func (s *StripDiagonals) erase(b *raster.Buffer, row, col, dir int) {
	for d := 1; d <= s.length && s.classifier.IsBlack(b, row+d, col+dir*d); d++ {
		b.SetWhite(row+d, col+dir*d)
	}
}
