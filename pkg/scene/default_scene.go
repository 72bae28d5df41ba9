package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const defaultDescription = "Hollow glass, diffuse and fuzzy metal spheres with depth of field"

// NewDefaultScene creates three spheres on a large ground sphere: hollow glass on the left,
// diffuse blue in the center and fuzzy gold metal on the right
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewVec3(-2, 2, 1)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)
	defaultCameraConfig.DefocusAngle = 10.0
	defaultCameraConfig.FocusDistance = 3.4

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.50)
	// Air bubble inside the glass: the index is relative to the enclosing glass
	materialBubble := material.NewDielectric(1.00 / 1.50)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, materialBubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	return &Scene{
		Name:         "default",
		Description:  defaultDescription,
		World:        world,
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Background:   integrator.DefaultBackground(),
	}
}
