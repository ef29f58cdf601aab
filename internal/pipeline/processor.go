package pipeline

import (
	"context"
	"fmt"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/logger"
	"pepper-purger/internal/spatial"
)

type imageProcessor struct {
	logger logger.Logger
	mapper *coloring.Mapper
}

func (p *imageProcessor) Denoise(ctx context.Context, inputData *ImageData, cfg spatial.Config) (*ImageData, error) {
	if inputData == nil || inputData.Gray == nil {
		return nil, fmt.Errorf("denoise: %w", spatial.ErrEmptyImage)
	}

	filter, err := spatial.NewFilter(cfg, p.logger)
	if err != nil {
		return nil, fmt.Errorf("invalid filter configuration: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := filter.Apply(ctx, inputData.Gray)
	if err != nil {
		return nil, fmt.Errorf("%s filter failed: %w", filter.Name(), err)
	}

	return &ImageData{
		Gray:   result,
		Width:  result.Cols(),
		Height: result.Rows(),
		Format: inputData.Format,
		Path:   inputData.Path,
	}, nil
}

func (p *imageProcessor) Colorize(ctx context.Context, inputData *ImageData, opts coloring.Options) (*ImageData, error) {
	if inputData == nil || inputData.Gray == nil {
		return nil, fmt.Errorf("colorize: %w", spatial.ErrEmptyImage)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := p.mapper.Apply(inputData.Gray, opts)
	if err != nil {
		return nil, fmt.Errorf("%s coloring failed: %w", opts.Mode, err)
	}

	return &ImageData{
		Color:  result,
		Width:  result.Cols(),
		Height: result.Rows(),
		Format: inputData.Format,
		Path:   inputData.Path,
	}, nil
}
