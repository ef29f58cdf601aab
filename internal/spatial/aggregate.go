package spatial

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ArithmeticMean returns the sample mean truncated toward zero. An empty window yields 0.
func ArithmeticMean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Trunc(stat.Mean(samples, nil))
}

// GeometricMean returns the n-th root of the product of the samples, computed in log space so a
// large window cannot overflow. Any zero sample makes the result 0. The value is not truncated.
func GeometricMean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	for _, v := range samples {
		if v == 0 {
			return 0
		}
	}
	return stat.GeometricMean(samples, nil)
}

// Median returns the middle sample, or the floor of the mean of the two middle samples when the
// count is even.
func Median(samples []float64) float64 {
	m, err := stats.Median(samples)
	if err != nil {
		return 0
	}
	return math.Floor(m)
}

// LocalNoise applies the adaptive local noise reduction formula
//
//	center - (globalVar / effectiveVar) * (center - mean)
//
// where mean is the truncated arithmetic mean of the window and effectiveVar is the larger of
// globalVar and the sample (n-1) variance of the window. The ratio therefore never exceeds 1.
func LocalNoise(samples []float64, center, globalVar float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	effectiveVar := LocalVariance(samples)
	if globalVar > effectiveVar {
		effectiveVar = globalVar
	}
	if effectiveVar == 0 {
		return center
	}

	return center - (globalVar/effectiveVar)*(center-ArithmeticMean(samples))
}

// LocalVariance is the Bessel-corrected variance of the samples; fewer than two samples give 0.
func LocalVariance(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	return stat.Variance(samples, nil)
}

// OrderStats returns the minimum, maximum and Median of the samples.
func OrderStats(samples []float64) (lo, hi, median float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	lo, _ = stats.Min(samples)
	hi, _ = stats.Max(samples)
	return lo, hi, Median(samples)
}
