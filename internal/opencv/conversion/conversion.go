package conversion

import (
	"fmt"

	"curve-points/internal/opencv/safe"
	"curve-points/internal/raster"

	"gocv.io/x/gocv"
)

// MatToBuffer copies an 8-bit Mat into a raster buffer, reordering BGR(A)
// to RGB(A) so both decoders yield the same channel layout.
func MatToBuffer(src *safe.Mat) (*raster.Buffer, error) {
	if err := safe.Validate8Bit(src, "Mat to buffer conversion"); err != nil {
		return nil, err
	}

	data, err := src.Bytes()
	if err != nil {
		return nil, err
	}

	buf, err := raster.New(src.Rows(), src.Cols(), src.Channels())
	if err != nil {
		return nil, err
	}

	pix := buf.Pix()
	if len(data) != len(pix) {
		return nil, fmt.Errorf("Mat holds %d bytes, expected %d", len(data), len(pix))
	}
	copy(pix, data)
	swapRedBlue(pix, buf.Channels())

	return buf, nil
}

// BufferToMat converts a buffer into a BGR or gray Mat for display.
func BufferToMat(src *raster.Buffer, tag string) (*safe.Mat, error) {
	if src.Empty() {
		return nil, raster.ErrEmptyBuffer
	}

	var matType gocv.MatType
	switch src.Channels() {
	case 1:
		matType = gocv.MatTypeCV8UC1
	case 3:
		matType = gocv.MatTypeCV8UC3
	case 4:
		matType = gocv.MatTypeCV8UC4
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", src.Channels())
	}

	dst, err := safe.NewMat(src.Rows(), src.Cols(), matType, tag)
	if err != nil {
		return nil, err
	}

	mat := dst.GetMat()
	data, err := mat.DataPtrUint8()
	if err != nil {
		dst.Close()
		return nil, fmt.Errorf("Mat data access failed: %w", err)
	}
	if len(data) != len(src.Pix()) {
		dst.Close()
		return nil, fmt.Errorf("Mat holds %d bytes, expected %d", len(data), len(src.Pix()))
	}

	copy(data, src.Pix())
	swapRedBlue(data, src.Channels())
	return dst, nil
}

func swapRedBlue(pix []byte, channels int) {
	if channels < 3 {
		return
	}
	for i := 0; i+2 < len(pix); i += channels {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
