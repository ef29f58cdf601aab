package spatial

// AdaptiveMedian runs the two-stage adaptive median decision for the pixel at (row, col),
// starting with a window of side size and growing it by 2 while the window is degenerate
// (its median equals its minimum or maximum). Each step re-extracts a larger window from p, so p
// must carry at least max(size, sMax)/2 border rings.
//
// Stage A: when min < median < max, the original value is kept if it also lies strictly inside
// (min, max); otherwise it is an impulse and is replaced by the median.
// Stage B: when the window would grow past sMax, the last median is returned.
func AdaptiveMedian(p *Padded, row, col, size, sMax int, original float64) float64 {
	var scratch []float64
	return adaptiveMedian(p, row, col, size, sMax, original, &scratch)
}

func adaptiveMedian(p *Padded, row, col, size, sMax int, original float64, scratch *[]float64) float64 {
	if need := size * size; cap(*scratch) < need {
		*scratch = make([]float64, need)
	}

	window := p.extractInto(row, col, size/2, *scratch)
	lo, hi, median := OrderStats(window.Samples)

	if lo < median && median < hi {
		if lo < original && original < hi {
			return original
		}
		return median
	}

	if size+2 > sMax {
		return median
	}
	return adaptiveMedian(p, row, col, size+2, sMax, original, scratch)
}
