package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// WritePPM writes img as a plain-text (P3) PPM: a three-line header followed by one
// "r g b" line per pixel in row-major order, top row first
func WritePPM(w io.Writer, img *core.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, pixel := range img.Pixels {
		c := Quantize(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
