package coloring

import (
	"fmt"
	"math/rand/v2"
	"time"

	"pepper-purger/internal/logger"
	"pepper-purger/internal/spatial"
)

// Options selects how a grayscale image is turned into color.
type Options struct {
	Mode   Mode
	Slices int
	// Theta holds the red, green and blue phase offsets of the sinusoidal mode.
	Theta [3]float64
	// Seed makes the random palette reproducible; 0 draws a fresh palette on every call.
	Seed uint64
}

func DefaultOptions(mode Mode) Options {
	return Options{
		Mode:   mode,
		Slices: 8,
		Theta:  DefaultTheta,
	}
}

// Mapper builds lookup tables and applies them, logging the palette it used.
type Mapper struct {
	logger logger.Logger
}

func NewMapper(log logger.Logger) *Mapper {
	if log == nil {
		log = logger.NewNop()
	}
	return &Mapper{logger: log}
}

// Table builds the lookup table described by opts.
func (m *Mapper) Table(opts Options) ([]Slice, error) {
	switch opts.Mode {
	case ModeRandom:
		return RandomTable(opts.Slices, newRand(opts.Seed))
	case ModeSinusoidal:
		return SinusoidalTable(opts.Slices, opts.Theta)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, opts.Mode)
	}
}

func (m *Mapper) Apply(img *spatial.Image, opts Options) (*ColorImage, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%s coloring: %w", opts.Mode, spatial.ErrEmptyImage)
	}

	start := time.Now()
	table, err := m.Table(opts)
	if err != nil {
		return nil, err
	}

	palette := make([]string, len(table))
	for i, s := range table {
		palette[i] = fmt.Sprintf("%d:%s", s.Lower, s.Hex())
	}
	m.logger.Debug("ColorMapper", "lookup table built", map[string]interface{}{
		"mode":    opts.Mode.String(),
		"slices":  opts.Slices,
		"palette": palette,
	})

	out := MapTable(img, table)
	lo, hi := out.Range()

	m.logger.Info("ColorMapper", "coloring completed", map[string]interface{}{
		"mode":      opts.Mode.String(),
		"bins":      len(table),
		"min_value": lo,
		"max_value": hi,
		"duration":  time.Since(start),
	})

	return out, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0xda942042e4dd58b5))
}
