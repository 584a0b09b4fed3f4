package highgui

import (
	"fmt"

	"curve-points/internal/opencv/conversion"
	"curve-points/internal/raster"

	"gocv.io/x/gocv"
)

// WindowSink shows each stage in an OpenCV window and waits for a key
// press before the pipeline continues.
type WindowSink struct {
	// Delay is passed to WaitKey; 0 waits indefinitely.
	Delay int
}

func NewWindowSink() *WindowSink {
	return &WindowSink{}
}

func (w *WindowSink) Show(title string, b *raster.Buffer) error {
	mat, err := conversion.BufferToMat(b, title)
	if err != nil {
		return fmt.Errorf("preview %s: %w", title, err)
	}
	defer mat.Close()

	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(mat.GetMat())
	window.WaitKey(w.Delay)
	return nil
}
