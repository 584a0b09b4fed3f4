package raster

// Classifier decides which pixels count as black.
type Classifier struct {
	// MaxSample is the full-scale channel value; zero means 255.
	MaxSample int
}

// Threshold is the channel-sum cutoff for a pixel with the given channel
// count. Integer division matches the classic channels*255/2 rule, so a
// 3-channel pixel is black below 382 and a gray pixel below 127.
func (c Classifier) Threshold(channels int) int {
	full := c.MaxSample
	if full == 0 {
		full = MaxSample
	}
	return channels * full / 2
}

// IsBlack reports whether the pixel's sample sum is strictly below the
// threshold.
func (c Classifier) IsBlack(b *Buffer, row, col int) bool {
	return b.Sum(row, col) < c.Threshold(b.channels)
}

// IsBlackAt is IsBlack with out-of-bounds positions treated as not black.
func (c Classifier) IsBlackAt(b *Buffer, row, col int) bool {
	return b.InBounds(row, col) && c.IsBlack(b, row, col)
}

func (c Classifier) HasNeighbourAbove(b *Buffer, row, col int) bool {
	return c.IsBlackAt(b, row-1, col)
}

func (c Classifier) HasNeighbourBelow(b *Buffer, row, col int) bool {
	return c.IsBlackAt(b, row+1, col)
}

func (c Classifier) HasNeighbourLeft(b *Buffer, row, col int) bool {
	return c.IsBlackAt(b, row, col-1)
}

func (c Classifier) HasNeighbourRight(b *Buffer, row, col int) bool {
	return c.IsBlackAt(b, row, col+1)
}

// NeighbourCount counts black pixels among the four direct neighbours.
func (c Classifier) NeighbourCount(b *Buffer, row, col int) int {
	n := 0
	for _, has := range []bool{
		c.HasNeighbourRight(b, row, col),
		c.HasNeighbourLeft(b, row, col),
		c.HasNeighbourBelow(b, row, col),
		c.HasNeighbourAbove(b, row, col),
	} {
		if has {
			n++
		}
	}
	return n
}

// CountBlack counts the black pixels of b.
func (c Classifier) CountBlack(b *Buffer) int {
	n := 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if c.IsBlack(b, row, col) {
				n++
			}
		}
	}
	return n
}
