package imgcodecs

import (
	"fmt"

	"curve-points/internal/imageio"
	"curve-points/internal/opencv/conversion"
	"curve-points/internal/opencv/safe"
	"curve-points/internal/raster"

	"gocv.io/x/gocv"
)

// Loader decodes images with OpenCV as 3-channel colour, the way
// imread does by default.
type Loader struct {
	SearchDirs []string
}

func NewLoader(searchDirs ...string) *Loader {
	return &Loader{SearchDirs: searchDirs}
}

func (l *Loader) Load(path string) (*raster.Buffer, error) {
	resolved, err := imageio.Resolve(path, l.SearchDirs)
	if err != nil {
		return nil, err
	}

	mat, err := safe.Adopt(gocv.IMRead(resolved, gocv.IMReadColor), "loaded_image")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: OpenCV could not decode the file", imageio.ErrMalformed, resolved)
	}
	defer mat.Close()

	buf, err := conversion.MatToBuffer(mat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", imageio.ErrMalformed, resolved, err)
	}
	return buf, nil
}
