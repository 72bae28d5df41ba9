package renderer

import (
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// DefaultSeed seeds the sampler of a new Raytracer
const DefaultSeed = 42

// Raytracer renders a world through a camera, one scanline at a time.
// A Raytracer owns its sampler and must not be used from multiple goroutines.
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a raytracer using path tracing against the default sky,
// a sampler seeded with DefaultSeed and no logging
func NewRaytracer(camera *Camera, world geometry.Hittable) *Raytracer {
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultBackground()),
		sampler:    core.NewSeededSampler(DefaultSeed),
		logger:     NopLogger{},
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// SetSampler replaces the random source used for jitter, defocus and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger sets where progress is reported
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderPixel averages SamplesPerPixel camera rays through pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int) core.Vec3 {
	var ps PixelStats
	rt.samplePixel(i, j, &ps)
	return ps.GetColor()
}

func (rt *Raytracer) samplePixel(i, j int, ps *PixelStats) {
	for sample := 0; sample < rt.camera.SamplesPerPixel(); sample++ {
		ray := rt.camera.GetRay(i, j, rt.sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler, rt.camera.MaxDepth()))
	}
}

// Render renders the whole image in row-major order, top row first, reporting the
// number of remaining scanlines through the logger
func (rt *Raytracer) Render() (*core.Image, RenderStats) {
	startTime := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	img := core.NewImage(width, height)

	stats := RenderStats{TotalPixels: width * height}

	for j := 0; j < height; j++ {
		rt.logger.Printf("\rScanlines remaining: %d ", height-j)
		for i := 0; i < width; i++ {
			var ps PixelStats
			rt.samplePixel(i, j, &ps)
			img.Set(i, j, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}
	rt.logger.Printf("\rDone.                 \n")

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.Elapsed = time.Since(startTime)

	return img, stats
}
