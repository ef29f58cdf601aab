package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/spatial"

	"gopkg.in/yaml.v3"
)

// Job is the YAML description of one run of the tool.
type Job struct {
	Input    string          `yaml:"input"`
	Output   string          `yaml:"output"`
	LogLevel string          `yaml:"log_level"`
	Filter   FilterSection   `yaml:"filter"`
	Coloring ColoringSection `yaml:"coloring"`
}

// FilterSection leaves numeric fields nil when the key is absent, so that an explicit 0 is
// validated rather than replaced by a default.
type FilterSection struct {
	Kind          string   `yaml:"kind"`
	Size          *int     `yaml:"size"`
	NoiseVariance *float64 `yaml:"noise_variance"`
	SMax          *int     `yaml:"s_max"`
	PadValue      int      `yaml:"pad_value"`
	Workers       *int     `yaml:"workers"`
}

type ColoringSection struct {
	Mode      string    `yaml:"mode"`
	Slices    *int      `yaml:"slices"`
	Theta     []float64 `yaml:"theta"`
	Seed      uint64    `yaml:"seed"`
	Normalize bool      `yaml:"normalize"`
}

// Load reads and decodes a job file. Unknown keys are rejected.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	job, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return job, nil
}

// Parse decodes a job from raw YAML with the same strictness as Load.
func Parse(data []byte) (*Job, error) {
	job, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return job, nil
}

func decode(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var job Job
	if err := dec.Decode(&job); err != nil && err != io.EOF {
		return nil, err
	}
	return &job, nil
}

// FilterConfig converts the filter section into a spatial.Config. Absent keys fall back to the
// spatial defaults; explicit values, zero included, must pass validation.
func (j *Job) FilterConfig() (spatial.Config, error) {
	kind, err := spatial.ParseKind(j.Filter.Kind)
	if err != nil {
		return spatial.Config{}, err
	}

	cfg := spatial.DefaultConfig(kind)
	if j.Filter.Size != nil {
		cfg.Size = *j.Filter.Size
	}
	if j.Filter.SMax != nil {
		cfg.SMax = *j.Filter.SMax
	}
	if j.Filter.Workers != nil {
		cfg.Workers = *j.Filter.Workers
	}
	cfg.PadValue = j.Filter.PadValue
	cfg.NoiseVariance = j.Filter.NoiseVariance

	cfg.Size = spatial.OddSize(cfg.Size)
	if err := cfg.Validate(); err != nil {
		return spatial.Config{}, err
	}
	return cfg, nil
}

// ColoringOptions converts the coloring section into coloring.Options.
func (j *Job) ColoringOptions() (coloring.Options, error) {
	mode, err := coloring.ParseMode(j.Coloring.Mode)
	if err != nil {
		return coloring.Options{}, err
	}

	opts := coloring.DefaultOptions(mode)
	if j.Coloring.Slices != nil {
		opts.Slices = *j.Coloring.Slices
	}
	opts.Seed = j.Coloring.Seed

	switch len(j.Coloring.Theta) {
	case 0:
	case 3:
		copy(opts.Theta[:], j.Coloring.Theta)
	default:
		return coloring.Options{}, fmt.Errorf("theta needs exactly 3 phase offsets, got %d", len(j.Coloring.Theta))
	}

	if _, err := coloring.Bounds(opts.Slices); err != nil {
		return coloring.Options{}, err
	}
	return opts, nil
}
