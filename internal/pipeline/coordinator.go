package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/logger"
	"pepper-purger/internal/spatial"
)

type ImageProcessor interface {
	Denoise(ctx context.Context, inputData *ImageData, cfg spatial.Config) (*ImageData, error)
	Colorize(ctx context.Context, inputData *ImageData, opts coloring.Options) (*ImageData, error)
}

type ImageLoader interface {
	LoadFromPath(path string) (*ImageData, error)
	LoadFromBytes(data []byte, extension string) (*ImageData, error)
}

type ImageSaver interface {
	SaveToWriter(writer io.Writer, imageData *ImageData, format string, normalize bool) error
	SaveToPath(path string, imageData *ImageData, normalize bool) error
}

// ImageData carries either a grayscale or a color image between pipeline stages.
type ImageData struct {
	Gray   *spatial.Image
	Color  *coloring.ColorImage
	Width  int
	Height int
	Format string
	Path   string
}

// Coordinator wires the image source, the processing core and the image sink together. It is
// the only place in the module that touches files.
type Coordinator struct {
	logger    logger.Logger
	loader    ImageLoader
	processor ImageProcessor
	saver     ImageSaver
}

func NewCoordinator(log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewNop()
	}

	coord := &Coordinator{
		logger: log,
		loader: &imageLoader{logger: log},
		processor: &imageProcessor{
			logger: log,
			mapper: coloring.NewMapper(log),
		},
		saver: &imageSaver{logger: log},
	}

	log.Debug("PipelineCoordinator", "initialized", nil)
	return coord
}

func (c *Coordinator) LoadImage(path string) (*ImageData, error) {
	start := time.Now()

	imageData, err := c.loader.LoadFromPath(path)
	if err != nil {
		c.logger.Error("PipelineCoordinator", err, map[string]interface{}{
			"operation": "load_image",
			"path":      path,
		})
		return nil, err
	}

	c.logger.Debug("PipelineCoordinator", "image loaded", map[string]interface{}{
		"path":      path,
		"load_time": time.Since(start),
	})

	return imageData, nil
}

// DenoiseFile loads input, filters it with cfg and writes the result to output.
func (c *Coordinator) DenoiseFile(ctx context.Context, input, output string, cfg spatial.Config) error {
	original, err := c.LoadImage(input)
	if err != nil {
		return err
	}

	start := time.Now()
	processed, err := c.processor.Denoise(ctx, original, cfg)
	if err != nil {
		c.logger.Error("PipelineCoordinator", err, map[string]interface{}{
			"operation": "denoise",
			"kind":      cfg.Kind.String(),
		})
		return err
	}

	c.logger.Info("PipelineCoordinator", "image processed", map[string]interface{}{
		"kind":            cfg.Kind.String(),
		"width":           processed.Width,
		"height":          processed.Height,
		"processing_time": time.Since(start),
	})

	return c.SaveImage(output, processed, false)
}

// ColorizeFile loads input, maps it to color with opts and writes the result to output.
func (c *Coordinator) ColorizeFile(ctx context.Context, input, output string, opts coloring.Options, normalize bool) error {
	original, err := c.LoadImage(input)
	if err != nil {
		return err
	}

	processed, err := c.processor.Colorize(ctx, original, opts)
	if err != nil {
		c.logger.Error("PipelineCoordinator", err, map[string]interface{}{
			"operation": "colorize",
			"mode":      opts.Mode.String(),
		})
		return err
	}

	return c.SaveImage(output, processed, normalize)
}

func (c *Coordinator) SaveImage(path string, imageData *ImageData, normalize bool) error {
	start := time.Now()
	if err := c.saver.SaveToPath(path, imageData, normalize); err != nil {
		c.logger.Error("PipelineCoordinator", err, map[string]interface{}{
			"operation": "save_image",
			"path":      path,
		})
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	c.logger.Debug("PipelineCoordinator", "image saved", map[string]interface{}{
		"path":      path,
		"save_time": time.Since(start),
	})

	return nil
}

func (c *Coordinator) Denoise(ctx context.Context, imageData *ImageData, cfg spatial.Config) (*ImageData, error) {
	return c.processor.Denoise(ctx, imageData, cfg)
}

func (c *Coordinator) Colorize(ctx context.Context, imageData *ImageData, opts coloring.Options) (*ImageData, error) {
	return c.processor.Colorize(ctx, imageData, opts)
}

func (c *Coordinator) SaveToWriter(writer io.Writer, imageData *ImageData, format string, normalize bool) error {
	return c.saver.SaveToWriter(writer, imageData, format, normalize)
}
