package spatial

import (
	"math"
)

const (
	DefaultSize = 3
	// DefaultSMax bounds adaptive median window growth.
	DefaultSMax = 15
)

// Config is the immutable parameter set of a Filter.
type Config struct {
	Kind Kind
	// Size is the window side; even values are decremented by one.
	Size int
	// NoiseVariance is the global noise variance, required by KindLocalNoise only.
	NoiseVariance *float64
	// SMax is the largest window side the adaptive median may grow to.
	SMax int
	// PadValue fills the border rings added around the image.
	PadValue int
	// Workers is the number of rows processed concurrently; 1 keeps the pass sequential.
	Workers int
}

func DefaultConfig(kind Kind) Config {
	return Config{
		Kind:    kind,
		Size:    DefaultSize,
		SMax:    DefaultSMax,
		Workers: 1,
	}
}

// NoiseVariance is a convenience for filling Config.NoiseVariance.
func NoiseVariance(v float64) *float64 {
	return &v
}

// OddSize decrements an even window side to the next odd value below it.
func OddSize(size int) int {
	if size%2 == 0 {
		return size - 1
	}
	return size
}

// Normalize forces an odd window size and fills zero-valued SMax and Workers with defaults.
func (c Config) Normalize() Config {
	c.Size = OddSize(c.Size)
	if c.SMax == 0 {
		c.SMax = DefaultSMax
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	return c
}

// Border is the number of padding rings the driver must add so that every window, including the
// largest adaptive median window, stays inside the padded image.
func (c Config) Border() int {
	half := c.Size / 2
	if c.Kind == KindAdaptiveMedian && c.SMax/2 > half {
		return c.SMax / 2
	}
	return half
}

func (c Config) Validate() error {
	if !c.Kind.Valid() {
		return &ValidationError{
			Context: "filter configuration",
			Field:   "Kind",
			Value:   int(c.Kind),
			Reason:  "must be one of arithmetic_mean, geometric_mean, median, local_noise, adaptive_median",
			Err:     ErrUnknownKind,
		}
	}

	if c.Size < 1 || c.Size%2 == 0 {
		return &ValidationError{
			Context: "filter configuration",
			Field:   "Size",
			Value:   c.Size,
			Reason:  "must be an odd number >= 1",
		}
	}

	if c.Kind == KindLocalNoise {
		if c.NoiseVariance == nil {
			return &ValidationError{
				Context: "filter configuration",
				Field:   "NoiseVariance",
				Value:   nil,
				Reason:  "required for local_noise",
				Err:     ErrMissingNoiseVariance,
			}
		}
		v := *c.NoiseVariance
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{
				Context: "filter configuration",
				Field:   "NoiseVariance",
				Value:   v,
				Reason:  "must be a finite value >= 0",
			}
		}
	}

	if c.SMax < 1 {
		return &ValidationError{
			Context: "filter configuration",
			Field:   "SMax",
			Value:   c.SMax,
			Reason:  "must be >= 1",
		}
	}

	if c.PadValue < 0 {
		return &ValidationError{
			Context: "filter configuration",
			Field:   "PadValue",
			Value:   c.PadValue,
			Reason:  "must be a non-negative intensity",
		}
	}

	if c.Workers < 1 {
		return &ValidationError{
			Context: "filter configuration",
			Field:   "Workers",
			Value:   c.Workers,
			Reason:  "must be >= 1",
		}
	}

	return nil
}
