package output

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Canvas paints the quantized framebuffer into a gg drawing context
func Canvas(img *core.Image) *gg.Context {
	dc := gg.NewContext(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := Quantize(img.At(x, y))
			dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			dc.SetPixel(x, y)
		}
	}
	return dc
}

// ToImage returns the quantized framebuffer as a standard image
func ToImage(img *core.Image) image.Image {
	return Canvas(img).Image()
}

// EncodePNG writes img to w as a PNG
func EncodePNG(w io.Writer, img *core.Image) error {
	if err := Canvas(img).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to the named file as a PNG
func SavePNG(path string, img *core.Image) error {
	if err := Canvas(img).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}
