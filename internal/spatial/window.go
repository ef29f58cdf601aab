package spatial

import "fmt"

// Window is the square neighborhood of a pixel, samples stored row-major.
type Window struct {
	Side    int
	Samples []float64
}

// Center returns the middle sample of the window.
func (w Window) Center() float64 {
	return w.Samples[len(w.Samples)/2]
}

// Extract returns the window of side 2*half+1 centered on (row, col), given in unpadded
// coordinates. A window reaching past the padded grid means the border was sized wrongly, which
// is a programming error, so Extract panics instead of clamping.
func (p *Padded) Extract(row, col, half int) Window {
	side := 2*half + 1
	return p.extractInto(row, col, half, make([]float64, side*side))
}

func (p *Padded) extractInto(row, col, half int, buf []float64) Window {
	side := 2*half + 1
	top := row + p.border - half
	left := col + p.border - half

	if half < 0 || top < 0 || left < 0 || top+side > p.img.rows || left+side > p.img.cols {
		panic(fmt.Sprintf("spatial: window of side %d at (%d,%d) exceeds padded image %dx%d (border %d)",
			side, row, col, p.img.rows, p.img.cols, p.border))
	}

	samples := buf[:side*side]
	i := 0
	for r := top; r < top+side; r++ {
		base := r * p.img.cols
		for c := left; c < left+side; c++ {
			samples[i] = float64(p.img.pix[base+c])
			i++
		}
	}

	return Window{Side: side, Samples: samples}
}
