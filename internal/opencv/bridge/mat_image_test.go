package bridge

import (
	"testing"

	"pepper-purger/internal/coloring"
	"pepper-purger/internal/spatial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestImageMatRoundTrip(t *testing.T) {
	img, err := spatial.FromRows([][]int{
		{0, 10, 255},
		{300, 42, 7},
	})
	require.NoError(t, err)

	mat, err := ImageToMat(img)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 2, mat.Rows())
	assert.Equal(t, 3, mat.Cols())
	assert.Equal(t, uint8(255), mat.GetUCharAt(1, 0), "values above 255 saturate")

	back, err := MatToImage(mat)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 10, 255},
		{255, 42, 7},
	}, back.ToRows())
}

func TestMatToImageRejectsColor(t *testing.T) {
	mat := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC3)
	defer mat.Close()

	_, err := MatToImage(mat)
	assert.Error(t, err)

	empty := gocv.NewMat()
	defer empty.Close()
	_, err = MatToImage(empty)
	assert.Error(t, err)
}

func TestColorImageToMatUsesBGR(t *testing.T) {
	ci := coloring.NewColorImage(1, 2)
	ci.Set(0, 0, [3]float64{10, 20, 30})
	ci.Set(0, 1, [3]float64{-50, 128, 400})

	mat, err := ColorImageToMat(ci)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, float32(30), mat.GetFloatAt3(0, 0, 0))
	assert.Equal(t, float32(20), mat.GetFloatAt3(0, 0, 1))
	assert.Equal(t, float32(10), mat.GetFloatAt3(0, 0, 2))

	saturated, err := ToDisplayable(mat, false)
	require.NoError(t, err)
	defer saturated.Close()
	assert.Equal(t, gocv.MatTypeCV8UC3, saturated.Type())
	assert.Equal(t, uint8(255), saturated.GetUCharAt3(0, 1, 0))
	assert.Equal(t, uint8(0), saturated.GetUCharAt3(0, 1, 2))

	stretched, err := ToDisplayable(mat, true)
	require.NoError(t, err)
	defer stretched.Close()
	assert.Equal(t, uint8(255), stretched.GetUCharAt3(0, 1, 0))
	assert.Equal(t, uint8(0), stretched.GetUCharAt3(0, 1, 2))
}
