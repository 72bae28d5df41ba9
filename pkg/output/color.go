package output

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity is the range linear channels are clamped to before scaling to 8 bits
var intensity = core.NewInterval(0.000, 0.999)

// RGB8 is a quantized 8-bit color
type RGB8 struct {
	R, G, B uint8
}

// LinearToGamma applies approximate gamma-2.0 encoding. Non-positive values map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// Quantize gamma-encodes a linear color, clamps each channel to [0, 0.999] and scales it to [0, 255]
func Quantize(pixel core.Vec3) RGB8 {
	return RGB8{
		R: quantizeChannel(pixel.X),
		G: quantizeChannel(pixel.Y),
		B: quantizeChannel(pixel.Z),
	}
}

func quantizeChannel(linear float64) uint8 {
	// NaN fails every comparison in Clamp, so catch it here
	if math.IsNaN(linear) {
		return 0
	}
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}
