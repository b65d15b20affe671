package nubik

import (
	"fmt"
	"image"
	_ "image/png" // tile and font atlases ship as PNG
	"os"

	xdraw "golang.org/x/image/draw"
)

// ImageData is a decoded RGBA8 pixel buffer ready for texture upload.
// The rendering core treats the pixels opaquely.
type ImageData struct {
	Width  int
	Height int
	Pixels []byte
}

// LoadImage decodes an image file and converts it to tightly packed
// RGBA8 regardless of the source pixel format.
func LoadImage(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	return ConvertImage(src), nil
}

// ConvertImage converts any decoded image to an RGBA8 pixel buffer.
func ConvertImage(src image.Image) *ImageData {
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	return &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}
}
