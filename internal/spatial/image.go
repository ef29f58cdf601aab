package spatial

import "fmt"

// Image is a single-channel grid of non-negative integer intensities stored row-major.
type Image struct {
	rows int
	cols int
	pix  []int
}

func NewImage(rows, cols int) *Image {
	return &Image{
		rows: rows,
		cols: cols,
		pix:  make([]int, rows*cols),
	}
}

// NewUniform returns a rows x cols image with every sample set to value.
func NewUniform(rows, cols, value int) *Image {
	img := NewImage(rows, cols)
	for i := range img.pix {
		img.pix[i] = value
	}
	return img
}

// FromRows copies a rectangular [][]int into an Image.
func FromRows(data [][]int) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrEmptyImage)
	}

	cols := len(data[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrEmptyImage)
	}

	img := NewImage(len(data), cols)
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("negative intensity %d at (%d,%d)", v, r, c)
			}
			img.pix[r*cols+c] = v
		}
	}

	return img, nil
}

func (im *Image) Rows() int {
	return im.rows
}

func (im *Image) Cols() int {
	return im.cols
}

func (im *Image) Empty() bool {
	return im == nil || im.rows <= 0 || im.cols <= 0
}

func (im *Image) At(row, col int) int {
	return im.pix[row*im.cols+col]
}

func (im *Image) Set(row, col, value int) {
	im.pix[row*im.cols+col] = value
}

func (im *Image) Clone() *Image {
	pix := make([]int, len(im.pix))
	copy(pix, im.pix)
	return &Image{rows: im.rows, cols: im.cols, pix: pix}
}

// ToRows returns a freshly allocated [][]int copy of the image.
func (im *Image) ToRows() [][]int {
	out := make([][]int, im.rows)
	for r := range out {
		out[r] = make([]int, im.cols)
		copy(out[r], im.pix[r*im.cols:(r+1)*im.cols])
	}
	return out
}

// Equal reports whether both images have the same shape and samples.
func (im *Image) Equal(other *Image) bool {
	if im.rows != other.rows || im.cols != other.cols {
		return false
	}
	for i, v := range im.pix {
		if other.pix[i] != v {
			return false
		}
	}
	return true
}
