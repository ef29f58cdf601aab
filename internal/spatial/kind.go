package spatial

import (
	"fmt"
	"strings"
)

// Kind selects the per-pixel aggregation strategy of a Filter.
type Kind int

const (
	KindArithmeticMean Kind = iota + 1
	KindGeometricMean
	KindMedian
	KindLocalNoise
	KindAdaptiveMedian
)

var kindNames = map[Kind]string{
	KindArithmeticMean: "arithmetic_mean",
	KindGeometricMean:  "geometric_mean",
	KindMedian:         "median",
	KindLocalNoise:     "local_noise",
	KindAdaptiveMedian: "adaptive_median",
}

// Kinds lists every recognised kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindArithmeticMean,
		KindGeometricMean,
		KindMedian,
		KindLocalNoise,
		KindAdaptiveMedian,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a configuration name such as "adaptive_median". Hyphens and case are ignored.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for kind, kindName := range kindNames {
		if kindName == normalized {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
