package spatial

import "fmt"

// Padded is an image surrounded by Border rings of a constant value. Coordinates passed to
// Extract are in the unpadded image's space.
type Padded struct {
	img    *Image
	border int
}

// Pad returns a copy of img with border rings of value on every side. Adding the rings one at a
// time yields the same grid, so a single allocation is used.
func Pad(img *Image, border, value int) *Padded {
	if border < 0 {
		panic(fmt.Sprintf("spatial: negative padding border %d", border))
	}

	out := NewImage(img.rows+2*border, img.cols+2*border)
	if value != 0 {
		for i := range out.pix {
			out.pix[i] = value
		}
	}

	for r := 0; r < img.rows; r++ {
		dst := (r+border)*out.cols + border
		copy(out.pix[dst:dst+img.cols], img.pix[r*img.cols:(r+1)*img.cols])
	}

	return &Padded{img: out, border: border}
}

func (p *Padded) Border() int {
	return p.border
}

// Image returns the padded grid itself.
func (p *Padded) Image() *Image {
	return p.img
}
