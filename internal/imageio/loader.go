package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"curve-points/internal/raster"
)

var (
	// ErrNotFound means the path did not resolve to a readable file.
	ErrNotFound = errors.New("image not found")
	// ErrMalformed means the file exists but no decoder accepted it.
	ErrMalformed = errors.New("malformed image data")
)

// Loader decodes image files into 3-channel buffers using the Go image
// decoders.
type Loader struct {
	// SearchDirs are tried in order when a relative path does not exist
	// in the working directory.
	SearchDirs []string
}

func NewLoader(searchDirs ...string) *Loader {
	return &Loader{SearchDirs: searchDirs}
}

// Resolve finds the file a path refers to.
func (l *Loader) Resolve(path string) (string, error) {
	return Resolve(path, l.SearchDirs)
}

// Resolve returns path itself when it names a regular file, otherwise the
// first match under searchDirs for a relative path.
func Resolve(path string, searchDirs []string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}

	candidates := []string{path}
	if !filepath.IsAbs(path) {
		for _, dir := range searchDirs {
			candidates = append(candidates, filepath.Join(dir, path))
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

func (l *Loader) Load(path string) (*raster.Buffer, error) {
	resolved, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return nil, fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	buf, _, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	return buf, nil
}

func (l *Loader) LoadFromReader(r io.Reader) (*raster.Buffer, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}
	return l.LoadFromBytes(data)
}

// LoadFromBytes decodes data and reports the detected format name.
func (l *Loader) LoadFromBytes(data []byte) (*raster.Buffer, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return buf, format, nil
}
