package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const randomSpheresDescription = "Grid of small random spheres around three large ones"

// gridExtent bounds the small-sphere grid to [-gridExtent, gridExtent) on both axes
const gridExtent = 11

// NewRandomSpheresScene creates the field of small random spheres around three large ones.
// The layout and materials are drawn from a sampler seeded with seed.
func NewRandomSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewVec3(13, 2, 3)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, 0)
	defaultCameraConfig.DefocusAngle = 0.6
	defaultCameraConfig.FocusDistance = 10.0

	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	// Small spheres stay clear of the large metal sphere
	clearance := core.NewVec3(4, 0.2, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomRange(sampler, 0.5, 1)
				fuzz := 0.5 * sampler.Get1D()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Name:         "random-spheres",
		Description:  randomSpheresDescription,
		World:        world,
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Background:   integrator.DefaultBackground(),
	}
}

// randomRange returns a vector with each component uniform in [lo, hi)
func randomRange(sampler core.Sampler, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*sampler.Get1D(),
		lo+(hi-lo)*sampler.Get1D(),
		lo+(hi-lo)*sampler.Get1D(),
	)
}
