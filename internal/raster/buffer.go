package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

const (
	// MaxSample is the full-scale value of an 8-bit channel sample.
	MaxSample = 255

	// BinaryChannels is the channel count of every black/white buffer.
	BinaryChannels = 3
)

var (
	ErrEmptyBuffer  = errors.New("buffer is empty")
	ErrSizeMismatch = errors.New("buffer dimensions differ")
)

// Buffer is a rows x cols grid of multi-channel 8-bit samples stored
// row-major in a single owned slice.
type Buffer struct {
	rows     int
	cols     int
	channels int
	pix      []uint8
}

// New allocates a zeroed buffer.
func New(rows, cols, channels int) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", cols, rows)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}

	return &Buffer{
		rows:     rows,
		cols:     cols,
		channels: channels,
		pix:      make([]uint8, rows*cols*channels),
	}, nil
}

// NewBinary allocates an all-white 3-channel buffer.
func NewBinary(rows, cols int) (*Buffer, error) {
	buf, err := New(rows, cols, BinaryChannels)
	if err != nil {
		return nil, err
	}
	buf.Fill(MaxSample)
	return buf, nil
}

func (b *Buffer) Rows() int     { return b.rows }
func (b *Buffer) Cols() int     { return b.cols }
func (b *Buffer) Channels() int { return b.channels }

// Empty reports whether b is nil or holds no pixels.
func (b *Buffer) Empty() bool {
	return b == nil || len(b.pix) == 0
}

func (b *Buffer) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Buffer) SameSize(other *Buffer) bool {
	return other != nil && b.rows == other.rows && b.cols == other.cols
}

func (b *Buffer) offset(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("raster: pixel (%d,%d) out of bounds for %dx%d buffer", row, col, b.rows, b.cols))
	}
	return (row*b.cols + col) * b.channels
}

// At returns the samples of one pixel. The slice aliases the buffer.
func (b *Buffer) At(row, col int) []uint8 {
	i := b.offset(row, col)
	return b.pix[i : i+b.channels : i+b.channels]
}

// Set writes samples into one pixel. A single sample is broadcast to every
// channel; otherwise the sample count must equal the channel count.
func (b *Buffer) Set(row, col int, samples ...uint8) {
	px := b.At(row, col)
	switch len(samples) {
	case 1:
		for ch := range px {
			px[ch] = samples[0]
		}
	case len(px):
		copy(px, samples)
	default:
		panic(fmt.Sprintf("raster: %d samples for %d-channel buffer", len(samples), b.channels))
	}
}

func (b *Buffer) SetBlack(row, col int) { b.Set(row, col, 0) }
func (b *Buffer) SetWhite(row, col int) { b.Set(row, col, MaxSample) }

// Sum adds the channel samples of one pixel.
func (b *Buffer) Sum(row, col int) int {
	sum := 0
	for _, s := range b.At(row, col) {
		sum += int(s)
	}
	return sum
}

func (b *Buffer) Fill(value uint8) {
	for i := range b.pix {
		b.pix[i] = value
	}
}

func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{rows: b.rows, cols: b.cols, channels: b.channels, pix: pix}
}

// Pix exposes the backing slice for bulk conversions.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// FromImage copies img into a 3-channel buffer. Alpha is dropped and the
// straight (non-premultiplied) colour is kept.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	buf, err := New(bounds.Dy(), bounds.Dx(), BinaryChannels)
	if err != nil {
		return nil, err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Set(y-bounds.Min.Y, x-bounds.Min.X, c.R, c.G, c.B)
		}
	}

	return buf, nil
}

// ToImage renders b as an opaque RGBA image. One- and two-channel buffers
// are shown as gray, three or more channels use the first three as RGB.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.cols, b.rows))
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			px := b.At(row, col)
			var c color.RGBA
			if len(px) < 3 {
				c = color.RGBA{R: px[0], G: px[0], B: px[0], A: 255}
			} else {
				c = color.RGBA{R: px[0], G: px[1], B: px[2], A: 255}
			}
			img.SetRGBA(col, row, c)
		}
	}
	return img
}
