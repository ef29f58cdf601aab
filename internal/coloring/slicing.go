package coloring

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"pepper-purger/internal/spatial"
)

// Levels is the size of the intensity range divided into slices.
const Levels = 256

var (
	ErrInvalidSlices = errors.New("invalid slice count")
	ErrUnknownMode   = errors.New("unknown coloring mode")
)

// DefaultTheta spreads the three channel phases evenly around the circle.
var DefaultTheta = [3]float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3}

type Mode int

const (
	ModeRandom Mode = iota + 1
	ModeSinusoidal
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeSinusoidal:
		return "sinusoidal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "slicing", "intensity_slicing":
		return ModeRandom, nil
	case "sinusoidal", "sine", "transformation", "color_transformation":
		return ModeSinusoidal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Slice is one bin of the lookup table: every intensity from Lower up to the next bin's Lower
// maps to RGB.
type Slice struct {
	Lower int
	RGB   [3]float64
}

// Hex renders the bin color for logs, clamped to the displayable range.
func (s Slice) Hex() string {
	return toColorful(s.RGB).Clamped().Hex()
}

// Bounds returns the n+1 lower bounds obtained by cutting [0, 256) with n slices into bins of
// equal integer width 256/(n+1).
func Bounds(n int) ([]int, error) {
	if n < 0 || n >= Levels {
		return nil, fmt.Errorf("%w: %d, must be between 0 and %d", ErrInvalidSlices, n, Levels-1)
	}

	width := Levels / (n + 1)
	bounds := make([]int, n+1)
	for i := range bounds {
		bounds[i] = i * width
	}
	return bounds, nil
}

// binIndex returns the bin whose lower bound is the greatest bound <= v. Values above the last
// bound fall into the last bin. bounds must be ascending.
func binIndex(bounds []int, v int) int {
	i := sort.SearchInts(bounds, v+1) - 1
	if i < 0 {
		return 0
	}
	return i
}

// RandomTable assigns each of the n+1 bins a uniformly random RGB triplet in [0, 255].
func RandomTable(n int, rng *rand.Rand) ([]Slice, error) {
	bounds, err := Bounds(n)
	if err != nil {
		return nil, err
	}

	table := make([]Slice, len(bounds))
	for i, lower := range bounds {
		table[i] = Slice{
			Lower: lower,
			RGB: [3]float64{
				float64(rng.IntN(Levels)),
				float64(rng.IntN(Levels)),
				float64(rng.IntN(Levels)),
			},
		}
	}
	return table, nil
}

// SinusoidalTable colors each bin with 255*sin(k + theta[channel]), k being the bin midpoint.
// The last bin reuses the midpoint between the last two bounds, so at least one slice is needed.
func SinusoidalTable(n int, theta [3]float64) ([]Slice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d, sinusoidal transformation needs at least 1 slice", ErrInvalidSlices, n)
	}

	bounds, err := Bounds(n)
	if err != nil {
		return nil, err
	}

	table := make([]Slice, len(bounds))
	for i, lower := range bounds {
		var k float64
		if i+1 < len(bounds) {
			k = float64(lower+bounds[i+1]) / 2
		} else {
			k = float64(bounds[i-1]+lower) / 2
		}

		table[i] = Slice{
			Lower: lower,
			RGB: [3]float64{
				255 * math.Sin(k+theta[0]),
				255 * math.Sin(k+theta[1]),
				255 * math.Sin(k+theta[2]),
			},
		}
	}
	return table, nil
}

// MapTable colors every pixel of img with the triplet of its bin.
func MapTable(img *spatial.Image, table []Slice) *ColorImage {
	bounds := make([]int, len(table))
	for i, s := range table {
		bounds[i] = s.Lower
	}

	out := NewColorImage(img.Rows(), img.Cols())
	for r := 0; r < img.Rows(); r++ {
		for c := 0; c < img.Cols(); c++ {
			out.Set(r, c, table[binIndex(bounds, img.At(r, c))].RGB)
		}
	}
	return out
}

// IntensitySlicing maps img through a fresh random table of n+1 bins.
func IntensitySlicing(img *spatial.Image, n int, rng *rand.Rand) (*ColorImage, error) {
	table, err := RandomTable(n, rng)
	if err != nil {
		return nil, err
	}
	return MapTable(img, table), nil
}

// SinusoidalTransform maps img through SinusoidalTable(n, theta).
func SinusoidalTransform(img *spatial.Image, n int, theta [3]float64) (*ColorImage, error) {
	table, err := SinusoidalTable(n, theta)
	if err != nil {
		return nil, err
	}
	return MapTable(img, table), nil
}
