package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// MinHitDistance is the lower bound of the t search interval. Starting slightly above zero
// keeps a scattered ray from re-hitting the surface it just left ("shadow acne").
const MinHitDistance = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray with the given bounce budget
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3
}

// Background is a vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color looking straight up
	Bottom core.Vec3 // Color looking straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for the ray direction
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return b.Bottom.Lerp(b.Top, a)
}

// searchInterval is the t range every primary and scattered ray is tested against
func searchInterval() core.Interval {
	return core.NewInterval(MinHitDistance, math.Inf(1))
}
