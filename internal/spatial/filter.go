package spatial

import (
	"context"
	"fmt"
	"math"
	"time"

	"pepper-purger/internal/logger"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// Filter applies one configured aggregator over every pixel of a grayscale image.
type Filter struct {
	cfg    Config
	logger logger.Logger
}

// NewFilter normalizes and validates cfg. Configuration errors are reported here, before any
// image is touched.
func NewFilter(cfg Config, log logger.Logger) (*Filter, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Filter{cfg: cfg, logger: log}, nil
}

// Run is a one-shot filter pass with a silent logger.
func Run(ctx context.Context, img *Image, cfg Config) (*Image, error) {
	f, err := NewFilter(cfg, nil)
	if err != nil {
		return nil, err
	}
	return f.Apply(ctx, img)
}

func (f *Filter) Config() Config {
	return f.cfg
}

func (f *Filter) Name() string {
	return f.cfg.Kind.String()
}

// Aggregate computes the real-valued result for the pixel at (row, col) of the image p was built
// from. original is the unpadded sample at that position.
func (f *Filter) Aggregate(p *Padded, row, col int, original float64) float64 {
	var scratch []float64
	return f.aggregate(p, row, col, original, &scratch)
}

func (f *Filter) aggregate(p *Padded, row, col int, original float64, scratch *[]float64) float64 {
	if f.cfg.Kind == KindAdaptiveMedian {
		return adaptiveMedian(p, row, col, f.cfg.Size, f.cfg.SMax, original, scratch)
	}

	if need := f.cfg.Size * f.cfg.Size; cap(*scratch) < need {
		*scratch = make([]float64, need)
	}
	window := p.extractInto(row, col, f.cfg.Size/2, *scratch)

	switch f.cfg.Kind {
	case KindArithmeticMean:
		return ArithmeticMean(window.Samples)
	case KindGeometricMean:
		return GeometricMean(window.Samples)
	case KindMedian:
		return Median(window.Samples)
	case KindLocalNoise:
		return LocalNoise(window.Samples, original, *f.cfg.NoiseVariance)
	default:
		panic(fmt.Sprintf("spatial: unhandled filter kind %v", f.cfg.Kind))
	}
}

// Apply filters img and returns a new image of the same shape. img is not modified. On error,
// including context cancellation, no output is returned.
func (f *Filter) Apply(ctx context.Context, img *Image) (*Image, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%s filter: %w", f.Name(), ErrEmptyImage)
	}

	start := time.Now()
	padded := Pad(img, f.cfg.Border(), f.cfg.PadValue)
	out := img.Clone()

	f.logger.Debug("FilterDriver", "filter started", map[string]interface{}{
		"kind":       f.Name(),
		"size":       f.cfg.Size,
		"border":     padded.Border(),
		"padded":     fmt.Sprintf("%dx%d", padded.Image().Cols(), padded.Image().Rows()),
		"workers":    f.cfg.Workers,
		"input_size": fmt.Sprintf("%dx%d", img.Cols(), img.Rows()),
	})

	processRow := func(row int, scratch *[]float64) {
		for col := 0; col < img.Cols(); col++ {
			v := f.aggregate(padded, row, col, float64(img.At(row, col)), scratch)
			out.Set(row, col, Quantize(v))
		}
	}

	if f.cfg.Workers <= 1 {
		var scratch []float64
		for row := 0; row < img.Rows(); row++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			processRow(row, &scratch)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(f.cfg.Workers)
		for row := 0; row < img.Rows(); row++ {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				var scratch []float64
				processRow(row, &scratch)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	f.logger.Info("FilterDriver", "filter completed", map[string]interface{}{
		"kind":     f.Name(),
		"size":     f.cfg.Size,
		"pixels":   humanize.Comma(int64(img.Rows() * img.Cols())),
		"duration": time.Since(start),
	})

	return out, nil
}

// Quantize converts an aggregator result into a stored intensity. Real-valued results (geometric
// mean, local noise) are rounded to the nearest integer; negative and non-finite values map to 0.
func Quantize(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
