package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curve-points/internal/raster"
	"curve-points/internal/raster/rastertest"
)

func TestPointsAllBlack3x3(t *testing.T) {
	b := rastertest.FromRows(t, "###", "###", "###")

	var out bytes.Buffer
	if err := Write(&out, Points(b, raster.Classifier{})); err != nil {
		t.Fatal(err)
	}

	want := "0 3\n0 2\n0 1\n1 3\n1 2\n1 1\n2 3\n2 2\n2 1\n"
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}
}

func TestPointsColumnMajorWithFlip(t *testing.T) {
	b := rastertest.FromRows(t,
		"..#.",
		"#...",
		"...#",
	)
	got := Points(b, raster.Classifier{})
	want := []Point{{X: 0, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 1}}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPointsCountMatchesBlackPixels(t *testing.T) {
	b := rastertest.FromRows(t,
		"#.#.#",
		".#.#.",
		"##..#",
	)
	var c raster.Classifier
	if got, want := len(Points(b, c)), c.CountBlack(b); got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
}

func TestPointsEmpty(t *testing.T) {
	b := rastertest.FromRows(t, "...", "...")
	if got := Points(b, raster.Classifier{}); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("stale content that is long\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []Point{{X: 4, Y: 7}}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "4 7\n" {
		t.Errorf("file = %q", data)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "export.txt")
	err := WriteFile(path, []Point{{X: 1, Y: 1}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsFailure(t *testing.T) {
	err := Write(failingWriter{}, []Point{{X: 1, Y: 2}})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v, want disk full", err)
	}
}
