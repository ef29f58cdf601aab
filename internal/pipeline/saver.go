package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pepper-purger/internal/logger"
	"pepper-purger/internal/opencv/bridge"

	"gocv.io/x/gocv"
)

type imageSaver struct {
	logger logger.Logger
}

// SaveToWriter encodes imageData in the given format ("png", "jpeg", ...) and writes it out.
// Color results are converted to 8 bits first, min-max stretched when normalize is set.
func (s *imageSaver) SaveToWriter(writer io.Writer, imageData *ImageData, format string, normalize bool) error {
	if imageData == nil || (imageData.Gray == nil && imageData.Color == nil) {
		return fmt.Errorf("no image data to save")
	}

	ext, err := fileExt(format)
	if err != nil {
		return err
	}

	mat, err := s.toMat(imageData, normalize)
	if err != nil {
		return err
	}
	defer mat.Close()

	buf, err := gocv.IMEncode(ext, mat)
	if err != nil {
		s.logger.Error("ImageSaver", err, map[string]interface{}{
			"format": format,
		})
		return fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()

	if _, err := writer.Write(buf.GetBytes()); err != nil {
		return fmt.Errorf("failed to write encoded image: %w", err)
	}

	s.logger.Info("ImageSaver", "image saved", map[string]interface{}{
		"format": format,
		"bytes":  buf.Len(),
	})

	return nil
}

// SaveToPath picks the encoding from the file extension.
func (s *imageSaver) SaveToPath(path string, imageData *ImageData, normalize bool) error {
	format := determineFormat(filepath.Ext(path))
	if format == "unknown" {
		s.logger.Warning("ImageSaver", "unrecognised extension, using PNG", map[string]interface{}{
			"path": path,
		})
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := s.SaveToWriter(f, imageData, format, normalize); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (s *imageSaver) toMat(imageData *ImageData, normalize bool) (gocv.Mat, error) {
	if imageData.Gray != nil {
		return bridge.ImageToMat(imageData.Gray)
	}

	raw, err := bridge.ColorImageToMat(imageData.Color)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer raw.Close()

	return bridge.ToDisplayable(raw, normalize)
}

func fileExt(format string) (gocv.FileExt, error) {
	switch strings.ToLower(format) {
	case "png", "":
		return gocv.PNGFileExt, nil
	case "jpeg", "jpg":
		return gocv.JPEGFileExt, nil
	case "tiff", "tif":
		return gocv.FileExt(".tiff"), nil
	case "bmp":
		return gocv.FileExt(".bmp"), nil
	case "webp":
		return gocv.FileExt(".webp"), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
