package preview

import (
	"fmt"

	"github.com/fogleman/gg"

	"curve-points/internal/raster"
)

// OriginalTitle is the title under which the pipeline shows its source
// image.
const OriginalTitle = "original"

// Overlay draws the black pixels of the last snapshot as red dots over
// the original image and saves the result as a PNG when the run finishes.
type Overlay struct {
	Path       string
	Radius     float64
	Classifier raster.Classifier

	source *raster.Buffer
	last   *raster.Buffer
}

func NewOverlay(path string, classifier raster.Classifier) *Overlay {
	return &Overlay{Path: path, Radius: 2, Classifier: classifier}
}

func (o *Overlay) Show(title string, b *raster.Buffer) error {
	if title == OriginalTitle {
		o.source = b
		return nil
	}
	o.last = b
	return nil
}

func (o *Overlay) Finish() error {
	if o.source == nil || o.last == nil {
		return fmt.Errorf("overlay needs the original and at least one stage")
	}

	dc := gg.NewContextForImage(o.source.ToImage())
	dc.SetRGB(1, 0, 0)
	for row := 0; row < o.last.Rows(); row++ {
		for col := 0; col < o.last.Cols(); col++ {
			if o.Classifier.IsBlack(o.last, row, col) {
				dc.DrawCircle(float64(col)+0.5, float64(row)+0.5, o.Radius)
			}
		}
	}
	dc.Fill()

	if err := dc.SavePNG(o.Path); err != nil {
		return fmt.Errorf("failed to save overlay %s: %w", o.Path, err)
	}
	return nil
}
