package coloring

import "github.com/lucasb-eyer/go-colorful"

// ColorImage holds three float channels per pixel in R, G, B order. Values are not clamped and
// may fall outside [0, 255].
type ColorImage struct {
	rows int
	cols int
	pix  []float64
}

func NewColorImage(rows, cols int) *ColorImage {
	return &ColorImage{
		rows: rows,
		cols: cols,
		pix:  make([]float64, rows*cols*3),
	}
}

func (ci *ColorImage) Rows() int {
	return ci.rows
}

func (ci *ColorImage) Cols() int {
	return ci.cols
}

func (ci *ColorImage) At(row, col int) [3]float64 {
	i := (row*ci.cols + col) * 3
	return [3]float64{ci.pix[i], ci.pix[i+1], ci.pix[i+2]}
}

func (ci *ColorImage) Set(row, col int, rgb [3]float64) {
	i := (row*ci.cols + col) * 3
	ci.pix[i] = rgb[0]
	ci.pix[i+1] = rgb[1]
	ci.pix[i+2] = rgb[2]
}

// Color returns the pixel scaled to colorful's unit range, without clamping.
func (ci *ColorImage) Color(row, col int) colorful.Color {
	return toColorful(ci.At(row, col))
}

// Range returns the smallest and largest channel value in the image.
func (ci *ColorImage) Range() (lo, hi float64) {
	if len(ci.pix) == 0 {
		return 0, 0
	}
	lo, hi = ci.pix[0], ci.pix[0]
	for _, v := range ci.pix[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func toColorful(rgb [3]float64) colorful.Color {
	return colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}
}
