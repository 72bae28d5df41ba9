package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    normal,
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < -tolerance {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DirectionIsNormalPlusUnitVector(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, _ := lambertian.Scatter(ray, hit, fixedSampler{v2: samplePlusZ})

	expected := core.NewVec3(0, 1, 1)
	if scatter.Scattered.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// The random unit vector is exactly -normal, so the sum cancels out
	scatter, didScatter := lambertian.Scatter(ray, hit, fixedSampler{v2: sampleMinusZ})
	if !didScatter {
		t.Fatal("Lambertian should scatter even for degenerate directions")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
