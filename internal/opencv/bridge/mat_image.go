package bridge

import (
	"fmt"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/spatial"

	"gocv.io/x/gocv"
)

// MaxIntensity is the largest value an 8-bit Mat sample can hold.
const MaxIntensity = 255

func ValidateMatForOperation(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

// MatToImage copies a single-channel 8-bit Mat into a spatial.Image. Color Mats are rejected:
// filters only accept grayscale input.
func MatToImage(mat gocv.Mat) (*spatial.Image, error) {
	if err := ValidateMatForOperation(mat, "MatToImage"); err != nil {
		return nil, err
	}

	if mat.Channels() != 1 {
		return nil, fmt.Errorf("expected a single-channel Mat, got %d channels", mat.Channels())
	}

	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("unsupported Mat type %v, expected CV_8UC1", mat.Type())
	}

	rows, cols := mat.Rows(), mat.Cols()
	img := spatial.NewImage(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Set(y, x, int(mat.GetUCharAt(y, x)))
		}
	}

	return img, nil
}

// ImageToMat writes img into a new CV_8UC1 Mat, saturating samples above 255. The caller owns
// the returned Mat and must Close it.
func ImageToMat(img *spatial.Image) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("ImageToMat: %w", spatial.ErrEmptyImage)
	}

	mat := gocv.NewMatWithSize(img.Rows(), img.Cols(), gocv.MatTypeCV8UC1)
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("failed to create Mat with size %dx%d", img.Cols(), img.Rows())
	}

	for y := 0; y < img.Rows(); y++ {
		for x := 0; x < img.Cols(); x++ {
			mat.SetUCharAt(y, x, saturate(img.At(y, x)))
		}
	}

	return mat, nil
}

// ColorImageToMat writes ci into a CV_32FC3 Mat in OpenCV's BGR channel order. Values keep their
// full range; use ToDisplayable before encoding.
func ColorImageToMat(ci *coloring.ColorImage) (gocv.Mat, error) {
	if ci == nil || ci.Rows() <= 0 || ci.Cols() <= 0 {
		return gocv.NewMat(), fmt.Errorf("ColorImageToMat: %w", spatial.ErrEmptyImage)
	}

	mat := gocv.NewMatWithSize(ci.Rows(), ci.Cols(), gocv.MatTypeCV32FC3)
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("failed to create Mat with size %dx%d", ci.Cols(), ci.Rows())
	}

	for y := 0; y < ci.Rows(); y++ {
		for x := 0; x < ci.Cols(); x++ {
			rgb := ci.At(y, x)
			mat.SetFloatAt3(y, x, 0, float32(rgb[2]))
			mat.SetFloatAt3(y, x, 1, float32(rgb[1]))
			mat.SetFloatAt3(y, x, 2, float32(rgb[0]))
		}
	}

	return mat, nil
}

// ToDisplayable converts a float Mat to 8 bits per channel. With normalize set, values are first
// stretched min-max onto [0, 255]; otherwise they are saturated.
func ToDisplayable(src gocv.Mat, normalize bool) (gocv.Mat, error) {
	if err := ValidateMatForOperation(src, "ToDisplayable"); err != nil {
		return gocv.NewMat(), err
	}

	working := src
	if normalize {
		stretched := gocv.NewMat()
		defer stretched.Close()
		gocv.Normalize(src, &stretched, 0, MaxIntensity, gocv.NormMinMax)
		working = stretched
	}

	var target gocv.MatType
	switch working.Channels() {
	case 1:
		target = gocv.MatTypeCV8UC1
	case 3:
		target = gocv.MatTypeCV8UC3
	default:
		return gocv.NewMat(), fmt.Errorf("unsupported number of channels: %d", working.Channels())
	}

	dst := gocv.NewMat()
	working.ConvertTo(&dst, target)
	if dst.Empty() {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("conversion to 8-bit failed")
	}

	return dst, nil
}

func saturate(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > MaxIntensity:
		return MaxIntensity
	default:
		return uint8(v)
	}
}
