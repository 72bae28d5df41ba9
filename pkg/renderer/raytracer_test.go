package renderer

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// createMaterialWorld creates a small world exercising all three materials
func createMaterialWorld() *geometry.HittableList {
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)),
	)
}

func TestRaytracer_NormalShadingEndToEnd(t *testing.T) {
	config := testCameraConfig()
	config.Width = 11
	camera := mustCamera(t, config)

	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewHittableList(sphere)

	rt := NewRaytracer(camera, world)
	rt.SetIntegrator(integrator.NewNormalIntegrator(integrator.DefaultBackground()))
	img, _ := rt.Render()

	if img.Width != 11 || img.Height != 11 {
		t.Fatalf("Expected 11x11 image, got %dx%d", img.Width, img.Height)
	}

	// Center pixel sees the sphere
	centerRay := camera.GetRay(5, 5, nil)
	hit, isHit := sphere.Hit(centerRay, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Center ray should hit the sphere")
	}
	expectedCenter := hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	if got := img.At(5, 5); !vecNear(got, expectedCenter, 1e-12) {
		t.Errorf("Center pixel: expected %v, got %v", expectedCenter, got)
	}
	if !vecNear(expectedCenter, core.NewVec3(0.5, 0.5, 1.0), 1e-9) {
		t.Errorf("Center normal should face the camera, got color %v", expectedCenter)
	}

	// Corners see the sky gradient
	for _, px := range [][2]int{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		ray := camera.GetRay(px[0], px[1], nil)
		unit := ray.Direction.Normalize()
		a := 0.5 * (unit.Y + 1)
		expected := core.NewVec3(1, 1, 1).Multiply(1 - a).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(a))

		if got := img.At(px[0], px[1]); !vecNear(got, expected, 1e-12) {
			t.Errorf("Pixel %v: expected background %v, got %v", px, expected, got)
		}
	}
}

func TestRaytracer_ZeroDepthIsBlack(t *testing.T) {
	config := testCameraConfig()
	config.Width = 8
	config.MaxDepth = 0
	config.SamplesPerPixel = 3
	camera := mustCamera(t, config)

	img, _ := NewRaytracer(camera, createMaterialWorld()).Render()
	for idx, pixel := range img.Pixels {
		if pixel != (core.Vec3{}) {
			t.Fatalf("Pixel %d should be black with zero depth, got %v", idx, pixel)
		}
	}
}

func TestRaytracer_DeterministicForSeed(t *testing.T) {
	for _, samples := range []int{1, 4} {
		config := testCameraConfig()
		config.Width = 16
		config.AspectRatio = 16.0 / 9.0
		config.SamplesPerPixel = samples
		config.MaxDepth = 10
		config.DefocusAngle = 2
		camera := mustCamera(t, config)
		world := createMaterialWorld()

		render := func() *core.Image {
			rt := NewRaytracer(camera, world)
			rt.SetSampler(core.NewSeededSampler(7))
			img, _ := rt.Render()
			return img
		}

		first, second := render(), render()
		for idx := range first.Pixels {
			if first.Pixels[idx] != second.Pixels[idx] {
				t.Fatalf("spp=%d: pixel %d differs between renders: %v vs %v",
					samples, idx, first.Pixels[idx], second.Pixels[idx])
			}
		}
	}
}

func TestRaytracer_StatsAndProgress(t *testing.T) {
	config := testCameraConfig()
	config.Width = 6
	config.AspectRatio = 2.0
	config.SamplesPerPixel = 5
	camera := mustCamera(t, config)

	var buf bytes.Buffer
	rt := NewRaytracer(camera, createMaterialWorld())
	rt.SetLogger(NewWriterLogger(&buf))

	img, stats := rt.Render()

	if img.Height != 3 {
		t.Fatalf("Expected height 3, got %d", img.Height)
	}
	if stats.TotalPixels != 18 {
		t.Errorf("Expected 18 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 90 {
		t.Errorf("Expected 90 samples, got %d", stats.TotalSamples)
	}
	if stats.AverageSamples != 5 {
		t.Errorf("Expected 5 average samples, got %f", stats.AverageSamples)
	}

	output := buf.String()
	for _, want := range []string{"Scanlines remaining: 3", "Scanlines remaining: 1", "Done."} {
		if !strings.Contains(output, want) {
			t.Errorf("Progress output missing %q: %q", want, output)
		}
	}
}

func TestRaytracer_RenderPixelMatchesRender(t *testing.T) {
	config := testCameraConfig()
	config.Width = 4
	config.SamplesPerPixel = 1
	camera := mustCamera(t, config)
	world := createMaterialWorld()

	rt := NewRaytracer(camera, world)
	rt.SetIntegrator(integrator.NewNormalIntegrator(integrator.DefaultBackground()))
	img, _ := rt.Render()

	for j := 0; j < img.Height; j++ {
		for i := 0; i < img.Width; i++ {
			if got := rt.RenderPixel(i, j); got != img.At(i, j) {
				t.Errorf("Pixel (%d,%d): RenderPixel %v != Render %v", i, j, got, img.At(i, j))
			}
		}
	}
}
