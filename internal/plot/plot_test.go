package plot

import (
	"bytes"
	"image/png"
	"testing"

	"curve-points/internal/export"
)

func TestRenderPNG(t *testing.T) {
	points := []export.Point{{X: 1, Y: 3}, {X: 4, Y: 2}, {X: 7, Y: 9}}

	opts := DefaultOptions()
	opts.Width = 320
	opts.Height = 240

	var buf bytes.Buffer
	if err := Render(&buf, points, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestRenderSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, []export.Point{{X: 5, Y: 5}}, DefaultOptions()); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, DefaultOptions()); err == nil {
		t.Error("expected error for empty point set")
	}
}

func TestAxisRange(t *testing.T) {
	r := axisRange([]float64{3, 8, 5}, 0)
	if r.Min != 2 || r.Max != 9 {
		t.Errorf("range = [%v, %v], want [2, 9]", r.Min, r.Max)
	}
	r = axisRange([]float64{3}, 40)
	if r.Min != 0 || r.Max != 40 {
		t.Errorf("range = [%v, %v], want [0, 40]", r.Min, r.Max)
	}
}
