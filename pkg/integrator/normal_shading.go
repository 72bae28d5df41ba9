package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// NormalIntegrator ignores materials and colors the first surface hit by its normal,
// mapping each component from [-1,1] to [0,1]. It never consumes randomness.
type NormalIntegrator struct {
	background Background
}

// NewNormalIntegrator creates a normal shading integrator
func NewNormalIntegrator(background Background) *NormalIntegrator {
	return &NormalIntegrator{background: background}
}

// RayColor returns 0.5*(normal + 1) at the first hit, or the background on a miss
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, searchInterval())
	if !isHit {
		return ni.background.Color(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
