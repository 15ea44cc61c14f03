package render

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// jpegQuality is used for .jpg and .jpeg output.
const jpegQuality = 95

// SaveImage writes img to path, choosing the encoder from the file extension.
//
// Supported extensions are .png, .jpg, .jpeg and .bmp (case-insensitive).
func SaveImage(path string, img image.Image) error {
	encoder, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}
