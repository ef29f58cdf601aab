package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pepper-purger/internal/logger"
	"pepper-purger/internal/opencv/bridge"

	"gocv.io/x/gocv"
)

type imageLoader struct {
	logger logger.Logger
}

// LoadFromPath reads an image file as 8-bit grayscale.
func (l *imageLoader) LoadFromPath(path string) (*ImageData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	imageData, err := l.LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	imageData.Path = path
	return imageData, nil
}

func (l *imageLoader) LoadFromBytes(data []byte, extension string) (*ImageData, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadGrayScale)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image with OpenCV: %w", err)
	}
	defer mat.Close()

	img, err := bridge.MatToImage(mat)
	if err != nil {
		return nil, fmt.Errorf("failed to convert decoded image: %w", err)
	}

	format := determineFormat(extension)
	imageData := &ImageData{
		Gray:   img,
		Width:  img.Cols(),
		Height: img.Rows(),
		Format: format,
	}

	l.logger.Info("ImageLoader", "image loaded", map[string]interface{}{
		"width":  imageData.Width,
		"height": imageData.Height,
		"format": format,
	})

	return imageData, nil
}

func determineFormat(extension string) string {
	switch strings.ToLower(extension) {
	case ".tiff", ".tif":
		return "tiff"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}
