package main

import (
	"fmt"
	"strconv"
	"strings"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/config"
	"pepper-purger/internal/pipeline"
	"pepper-purger/internal/spatial"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	logLevel string
	jobFile  string
	input    string
	output   string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          AppName,
		Short:        "Denoise grayscale images with spatial filters and map them to pseudo-color",
		Version:      AppVersion,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL or info)")
	root.PersistentFlags().StringVarP(&opts.jobFile, "config", "c", "", "YAML job file; flags override its values")
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "input image path")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output image path")

	root.AddCommand(
		newFilterCommand(opts),
		newColorizeCommand(opts),
		newKindsCommand(),
	)

	return root
}

// loadJob returns the job file named by --config, or an empty job, with --input, --output and
// --log-level applied on top.
func (g *globalOptions) loadJob(cmd *cobra.Command) (*config.Job, error) {
	job := &config.Job{}
	if g.jobFile != "" {
		loaded, err := config.Load(g.jobFile)
		if err != nil {
			return nil, err
		}
		job = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		job.Input = g.input
	}
	if flags.Changed("output") {
		job.Output = g.output
	}
	if flags.Changed("log-level") {
		job.LogLevel = g.logLevel
	}

	if job.Input == "" || job.Output == "" {
		return nil, fmt.Errorf("both an input and an output path are required")
	}

	return job, nil
}

func newFilterCommand(g *globalOptions) *cobra.Command {
	var (
		kind          string
		size          int
		noiseVariance float64
		sMax          int
		padValue      int
		workers       int
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Apply a spatial denoising filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := g.loadJob(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("kind") || job.Filter.Kind == "" {
				job.Filter.Kind = kind
			}
			if flags.Changed("size") {
				job.Filter.Size = &size
			}
			if flags.Changed("noise-variance") {
				job.Filter.NoiseVariance = &noiseVariance
			}
			if flags.Changed("s-max") {
				job.Filter.SMax = &sMax
			}
			if flags.Changed("pad-value") {
				job.Filter.PadValue = padValue
			}
			if flags.Changed("workers") {
				job.Filter.Workers = &workers
			}

			cfg, err := job.FilterConfig()
			if err != nil {
				return err
			}

			coord := pipeline.NewCoordinator(newLogger(job.LogLevel))
			return coord.DenoiseFile(cmd.Context(), job.Input, job.Output, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&kind, "kind", "k", spatial.KindMedian.String(), "filter kind (see the kinds command)")
	flags.IntVarP(&size, "size", "s", spatial.DefaultSize, "window side; even values are decremented")
	flags.Float64Var(&noiseVariance, "noise-variance", 0, "global noise variance, required by local_noise")
	flags.IntVar(&sMax, "s-max", spatial.DefaultSMax, "largest adaptive median window side")
	flags.IntVar(&padValue, "pad-value", 0, "intensity of the border rings")
	flags.IntVarP(&workers, "workers", "w", 1, "rows processed concurrently")

	return cmd
}

func newColorizeCommand(g *globalOptions) *cobra.Command {
	var (
		mode      string
		slices    int
		theta     string
		seed      uint64
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "colorize",
		Short: "Map grayscale intensities to pseudo-color",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := g.loadJob(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("mode") || job.Coloring.Mode == "" {
				job.Coloring.Mode = mode
			}
			if flags.Changed("slices") {
				job.Coloring.Slices = &slices
			}
			if flags.Changed("theta") {
				parsed, err := parseTheta(theta)
				if err != nil {
					return err
				}
				job.Coloring.Theta = parsed
			}
			if flags.Changed("seed") {
				job.Coloring.Seed = seed
			}
			if flags.Changed("normalize") {
				job.Coloring.Normalize = normalize
			}

			opts, err := job.ColoringOptions()
			if err != nil {
				return err
			}

			coord := pipeline.NewCoordinator(newLogger(job.LogLevel))
			return coord.ColorizeFile(cmd.Context(), job.Input, job.Output, opts, job.Coloring.Normalize)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mode, "mode", "m", coloring.ModeRandom.String(), "random or sinusoidal")
	flags.IntVarP(&slices, "slices", "n", 8, "number of slices; the range is cut into slices+1 bins")
	flags.StringVar(&theta, "theta", "", "comma-separated red,green,blue phase offsets for sinusoidal mode")
	flags.Uint64Var(&seed, "seed", 0, "seed for the random palette; 0 picks a new palette every run")
	flags.BoolVar(&normalize, "normalize", false, "stretch the color result onto [0, 255] instead of saturating")

	return cmd
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available filter kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range spatial.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind.String())
			}
		},
	}
}

func parseTheta(value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("theta needs 3 comma-separated values, got %q", value)
	}

	theta := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid theta component %q: %w", part, err)
		}
		theta[i] = v
	}
	return theta, nil
}
