package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustImage(t *testing.T, data [][]int) *Image {
	t.Helper()
	img, err := FromRows(data)
	require.NoError(t, err)
	return img
}

func TestPadAddsConstantRings(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 2},
		{3, 4},
	})

	p := Pad(img, 1, 0)
	assert.Equal(t, 1, p.Border())
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	}, p.Image().ToRows())

	p = Pad(img, 1, 9)
	assert.Equal(t, [][]int{
		{9, 9, 9, 9},
		{9, 1, 2, 9},
		{9, 3, 4, 9},
		{9, 9, 9, 9},
	}, p.Image().ToRows())
}

func TestPadOnceEqualsRepeatedSingleRings(t *testing.T) {
	img := mustImage(t, [][]int{
		{5, 6, 7},
		{8, 9, 10},
	})

	ringByRing := img
	for i := 0; i < 3; i++ {
		ringByRing = Pad(ringByRing, 1, 0).Image()
	}

	assert.True(t, Pad(img, 3, 0).Image().Equal(ringByRing))
}

func TestPadZeroBorderCopies(t *testing.T) {
	img := mustImage(t, [][]int{{1, 2, 3}})
	p := Pad(img, 0, 0)

	p.Image().Set(0, 0, 100)
	assert.Equal(t, 1, img.At(0, 0))
}

func TestExtractCornerWindow(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	p := Pad(img, 1, 0)

	w := p.Extract(0, 0, 1)
	assert.Equal(t, 3, w.Side)
	assert.Equal(t, []float64{
		0, 0, 0,
		0, 1, 2,
		0, 4, 5,
	}, w.Samples)
	assert.Equal(t, 1.0, w.Center())
}

func TestExtractUsesUnpaddedCoordinates(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	p := Pad(img, 3, 0)

	w := p.Extract(1, 1, 1)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, w.Samples)

	w = p.Extract(2, 2, 0)
	assert.Equal(t, []float64{9}, w.Samples)
}

func TestExtractBeyondBorderPanics(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 2},
		{3, 4},
	})
	p := Pad(img, 1, 0)

	assert.Panics(t, func() { p.Extract(0, 0, 2) })
	assert.Panics(t, func() { p.Extract(2, 0, 1) })
	assert.NotPanics(t, func() { p.Extract(1, 1, 1) })
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = FromRows([][]int{{}})
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.Error(t, err)

	_, err = FromRows([][]int{{1, -2}})
	assert.Error(t, err)
}
