package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct{ rows, cols, channels int }{
		{0, 1, 3},
		{1, 0, 3},
		{-1, 4, 3},
		{2, 2, 0},
	}
	for _, c := range cases {
		if _, err := New(c.rows, c.cols, c.channels); err == nil {
			t.Errorf("New(%d, %d, %d) succeeded", c.rows, c.cols, c.channels)
		}
	}
}

func TestRowMajorLayout(t *testing.T) {
	b, err := New(2, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 2, 10, 20, 30)

	pix := b.Pix()
	i := (1*3 + 2) * 3
	if pix[i] != 10 || pix[i+1] != 20 || pix[i+2] != 30 {
		t.Errorf("pixel (1,2) stored at wrong offset: %v", pix[i:i+3])
	}
	if got := b.Sum(1, 2); got != 60 {
		t.Errorf("Sum = %d, want 60", got)
	}
}

func TestSetBroadcastsSingleSample(t *testing.T) {
	b, err := New(1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(0, 0, 7)
	for ch, v := range b.At(0, 0) {
		if v != 7 {
			t.Errorf("channel %d = %d, want 7", ch, v)
		}
	}
}

func TestSetWrongSampleCountPanics(t *testing.T) {
	b, err := New(1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.Set(0, 0, 1, 2)
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	b, err := NewBinary(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.At(2, 0)
}

func TestCloneDoesNotAlias(t *testing.T) {
	b, err := NewBinary(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Clone()
	c.SetBlack(0, 0)

	if b.At(0, 0)[0] != MaxSample {
		t.Error("modifying the clone changed the original")
	}
	if !b.SameSize(c) {
		t.Error("clone has different size")
	}
}

func TestNewBinaryIsWhite(t *testing.T) {
	b, err := NewBinary(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b.Channels() != BinaryChannels {
		t.Errorf("channels = %d, want %d", b.Channels(), BinaryChannels)
	}
	for _, v := range b.Pix() {
		if v != MaxSample {
			t.Fatalf("sample %d, want %d", v, MaxSample)
		}
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(6, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	b, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if b.Rows() != 1 || b.Cols() != 2 || b.Channels() != 3 {
		t.Fatalf("got %dx%dx%d, want 1x2x3", b.Rows(), b.Cols(), b.Channels())
	}

	want := [][]uint8{{10, 20, 30}, {200, 100, 50}}
	for col, w := range want {
		got := b.At(0, col)
		for ch := range w {
			if got[ch] != w[ch] {
				t.Errorf("pixel %d = %v, want %v", col, got, w)
				break
			}
		}
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 90})

	b, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Sum(0, 0); got != 270 {
		t.Errorf("Sum = %d, want 270", got)
	}
}

func TestToImage(t *testing.T) {
	b, err := NewBinary(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.SetBlack(1, 2)

	img := b.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("black pixel rendered as %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("white pixel rendered as %v", got)
	}
}
