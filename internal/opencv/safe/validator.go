package safe

import (
	"fmt"

	"gocv.io/x/gocv"
)

func ValidateMatForOperation(mat *Mat, operation string) error {
	if mat == nil {
		return fmt.Errorf("Mat is nil for operation: %s", operation)
	}

	if !mat.IsValid() {
		return fmt.Errorf("Mat %s is closed for operation: %s", mat.Tag(), operation)
	}

	if mat.Empty() {
		return fmt.Errorf("Mat %s is empty for operation: %s", mat.Tag(), operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat %s has invalid dimensions %dx%d for operation: %s",
			mat.Tag(), mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

// Validate8Bit rejects Mats whose depth is not 8-bit unsigned.
func Validate8Bit(mat *Mat, operation string) error {
	if err := ValidateMatForOperation(mat, operation); err != nil {
		return err
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC2, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return nil
	default:
		return fmt.Errorf("Mat %s type %v is not 8-bit for operation: %s", mat.Tag(), mat.Type(), operation)
	}
}
