package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/spatial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayData(t *testing.T, rows [][]int) *ImageData {
	t.Helper()
	img, err := spatial.FromRows(rows)
	require.NoError(t, err)
	return &ImageData{Gray: img, Width: img.Cols(), Height: img.Rows(), Format: "png"}
}

func TestCoordinatorDenoise(t *testing.T) {
	coord := NewCoordinator(nil)
	input := grayData(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	out, err := coord.Denoise(context.Background(), input, spatial.DefaultConfig(spatial.KindMedian))
	require.NoError(t, err)
	assert.Equal(t, 5, out.Gray.At(1, 1))
	assert.Equal(t, 3, out.Width)
	assert.Equal(t, "png", out.Format)
}

func TestCoordinatorDenoiseRejectsBadConfig(t *testing.T) {
	coord := NewCoordinator(nil)
	input := grayData(t, [][]int{{1}})

	_, err := coord.Denoise(context.Background(), input, spatial.DefaultConfig(spatial.KindLocalNoise))
	assert.ErrorIs(t, err, spatial.ErrMissingNoiseVariance)

	_, err = coord.Denoise(context.Background(), nil, spatial.DefaultConfig(spatial.KindMedian))
	assert.ErrorIs(t, err, spatial.ErrEmptyImage)
}

func TestCoordinatorColorize(t *testing.T) {
	coord := NewCoordinator(nil)
	input := grayData(t, [][]int{{0, 255}})

	opts := coloring.DefaultOptions(coloring.ModeSinusoidal)
	out, err := coord.Colorize(context.Background(), input, opts)
	require.NoError(t, err)
	require.NotNil(t, out.Color)
	assert.Nil(t, out.Gray)
	assert.Equal(t, 2, out.Width)
}

func TestCoordinatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coord := NewCoordinator(nil)
	input := grayData(t, [][]int{{1, 2}, {3, 4}})

	_, err := coord.Denoise(ctx, input, spatial.DefaultConfig(spatial.KindMedian))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = coord.Colorize(ctx, input, coloring.DefaultOptions(coloring.ModeRandom))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoordinatorFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	noisy := filepath.Join(dir, "noisy.png")
	clean := filepath.Join(dir, "clean.png")

	coord := NewCoordinator(nil)
	input := grayData(t, [][]int{
		{100, 100, 100, 100},
		{100, 255, 100, 100},
		{100, 100, 0, 100},
		{100, 100, 100, 100},
	})
	require.NoError(t, coord.SaveImage(noisy, input, false))

	loaded, err := coord.LoadImage(noisy)
	require.NoError(t, err)
	assert.True(t, loaded.Gray.Equal(input.Gray))
	assert.Equal(t, "png", loaded.Format)

	cfg := spatial.DefaultConfig(spatial.KindAdaptiveMedian)
	cfg.PadValue = 100
	require.NoError(t, coord.DenoiseFile(context.Background(), noisy, clean, cfg))

	result, err := coord.LoadImage(clean)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Gray.At(1, 1))
	assert.Equal(t, 100, result.Gray.At(2, 2))
}

func TestCoordinatorColorizeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "gray.png")
	output := filepath.Join(dir, "color.png")

	coord := NewCoordinator(nil)
	require.NoError(t, coord.SaveImage(input, grayData(t, [][]int{{0, 128}, {200, 255}}), false))

	opts := coloring.DefaultOptions(coloring.ModeRandom)
	opts.Seed = 7
	require.NoError(t, coord.ColorizeFile(context.Background(), input, output, opts, true))

	_, err := coord.LoadImage(output)
	assert.NoError(t, err)
}

func TestSaveToWriterFormats(t *testing.T) {
	coord := NewCoordinator(nil)
	data := grayData(t, [][]int{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	require.NoError(t, coord.SaveToWriter(&buf, data, "png", false))
	assert.NotZero(t, buf.Len())

	err := coord.SaveToWriter(&buf, data, "xcf", false)
	assert.Error(t, err)

	err = coord.SaveToWriter(&buf, &ImageData{}, "png", false)
	assert.Error(t, err)
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := NewCoordinator(nil).LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
