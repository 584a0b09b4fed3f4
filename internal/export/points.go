package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"curve-points/internal/raster"
)

// DefaultFileName is where the CLI writes points unless told otherwise.
const DefaultFileName = "export.txt"

// Point is a pixel position with y increasing upward.
type Point struct {
	X int
	Y int
}

// Points collects every black pixel of b column by column, top to bottom,
// flipping the row so that row 0 maps to y = rows.
func Points(b *raster.Buffer, classifier raster.Classifier) []Point {
	var points []Point
	rows := b.Rows()
	for x := 0; x < b.Cols(); x++ {
		for y := 0; y < rows; y++ {
			if classifier.IsBlack(b, y, x) {
				points = append(points, Point{X: x, Y: rows - y})
			}
		}
	}
	return points
}

// Write emits one "x y" line per point.
func Write(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.X, p.Y); err != nil {
			return fmt.Errorf("failed to write point (%d,%d): %w", p.X, p.Y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush points: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes points to it. A partially
// written file is left in place on error.
func WriteFile(path string, points []Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return Write(f, points)
}
