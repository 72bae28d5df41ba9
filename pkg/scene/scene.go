package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Description  string
	World        *geometry.HittableList // Objects in the scene
	CameraConfig renderer.CameraConfig
	Background   integrator.Background // Sky seen by escaping rays
}

// NewRaytracer builds the scene's camera and returns a path tracing raytracer over its world
func (s *Scene) NewRaytracer() (*renderer.Raytracer, error) {
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}

	rt := renderer.NewRaytracer(camera, s.World)
	rt.SetIntegrator(integrator.NewPathTracingIntegrator(s.Background))
	return rt, nil
}

// GetPrimitiveCount returns the number of objects in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// applyOverrides merges the first camera override, if any, onto a scene's default config
func applyOverrides(defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(cameraOverrides) == 0 {
		return defaults
	}
	return renderer.MergeCameraConfig(defaults, cameraOverrides[0])
}
