package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const normalsDescription = "One sphere on the ground, for surface normal visualization"

// NewNormalsScene creates a single sphere resting on a ground sphere, seen straight down -z.
// It is meant for the normal-coloring integrator but renders with any integrator.
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return &Scene{
		Name:         "normals",
		Description:  normalsDescription,
		World:        world,
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Background:   integrator.DefaultBackground(),
	}
}
