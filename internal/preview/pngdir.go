package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"curve-points/internal/raster"
)

// PNGDir writes each snapshot to Dir as NN-title.png, optionally enlarged
// by an integer Scale with nearest-neighbour sampling so single pixels
// stay sharp.
type PNGDir struct {
	Dir   string
	Scale int

	count  int
	create func(string) (io.WriteCloser, error)
}

func NewPNGDir(dir string, scale int) *PNGDir {
	return &PNGDir{Dir: dir, Scale: scale}
}

func (p *PNGDir) Show(title string, b *raster.Buffer) (err error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	p.count++
	name := fmt.Sprintf("%02d-%s.png", p.count, sanitize(title))
	path := filepath.Join(p.Dir, name)

	f, err := p.open(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, Scaled(b.ToImage(), p.Scale)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func (p *PNGDir) open(path string) (io.WriteCloser, error) {
	if p.create != nil {
		return p.create(path)
	}
	return os.Create(path)
}

// Scaled enlarges img by factor; factors below 2 return img unchanged.
func Scaled(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func sanitize(title string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, title)
}
