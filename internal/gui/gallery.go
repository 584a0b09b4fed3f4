package gui

import (
	"fmt"
	"image"
	"sync"

	"curve-points/internal/raster"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	AppID = "com.curvepoints.preview"

	ImageAreaWidth  = 800
	ImageAreaHeight = 600
)

type frame struct {
	title string
	image image.Image
	black int
	rows  int
	cols  int
}

// Gallery collects every stage while the pipeline runs and shows them as
// tabs of one window once the run is over. Finish blocks until the window
// is closed and must run on the main goroutine.
type Gallery struct {
	title      string
	classifier raster.Classifier
	frames     []frame

	mu  sync.Mutex
	app fyne.App
}

func NewGallery(title string, classifier raster.Classifier) *Gallery {
	return &Gallery{title: title, classifier: classifier}
}

func (g *Gallery) Show(title string, b *raster.Buffer) error {
	g.frames = append(g.frames, frame{
		title: title,
		image: b.ToImage(),
		black: g.classifier.CountBlack(b),
		rows:  b.Rows(),
		cols:  b.Cols(),
	})
	return nil
}

func (g *Gallery) Finish() error {
	if len(g.frames) == 0 {
		return fmt.Errorf("no stages to show")
	}

	fyneApp := app.NewWithID(AppID)
	g.mu.Lock()
	g.app = fyneApp
	g.mu.Unlock()

	window := fyneApp.NewWindow(g.title)

	tabs := container.NewAppTabs()
	for _, f := range g.frames {
		tabs.Append(container.NewTabItem(f.title, g.frameView(f)))
	}
	tabs.SetTabLocation(container.TabLocationTop)

	window.SetContent(tabs)
	window.Resize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))
	window.CenterOnScreen()
	window.ShowAndRun()

	g.mu.Lock()
	g.app = nil
	g.mu.Unlock()
	return nil
}

// Shutdown quits a running gallery window so Finish returns.
func (g *Gallery) Shutdown() {
	g.mu.Lock()
	fyneApp := g.app
	g.mu.Unlock()

	if fyneApp != nil {
		fyne.Do(fyneApp.Quit)
	}
}

func (g *Gallery) frameView(f frame) fyne.CanvasObject {
	img := canvas.NewImageFromImage(f.image)
	img.FillMode = canvas.ImageFillContain
	// Pixel scaling keeps single surviving points visible when enlarged.
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(ImageAreaWidth/2, ImageAreaHeight/2))

	status := widget.NewLabel(fmt.Sprintf("%dx%d, %d black pixels", f.cols, f.rows, f.black))
	return container.NewBorder(nil, status, nil, nil, img)
}
