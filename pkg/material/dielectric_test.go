package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestDielectric_AlwaysScattersWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))
	for _, frontFace := range []bool{true, false} {
		hit := HitRecord{
			Point:     core.NewVec3(0, 0, 0),
			Normal:    core.NewVec3(0, 1, 0),
			T:         1.0,
			FrontFace: frontFace,
			Material:  glass,
		}

		for i := 0; i < 100; i++ {
			result, scattered := glass.Scatter(ray, hit, sampler)
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			if !result.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
				t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
			}
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at 60 degrees: 1.5 * sin(60°) > 1
	theta := math.Pi / 3
	direction := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), direction)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	// Even a draw that would always refract must reflect
	result, _ := glass.Scatter(ray, hit, fixedSampler{v1: 0.999})

	expected := core.NewVec3(math.Sin(theta), math.Cos(theta), 0)
	if result.Scattered.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected total internal reflection to %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectric_SchlickDecision(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		// Reflectance at normal incidence is 0.04
		{"Draw below reflectance reflects", 0.01, core.NewVec3(0, 0, 1)},
		{"Draw above reflectance refracts", 0.5, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := glass.Scatter(ray, hit, fixedSampler{v1: tt.draw})
			if result.Scattered.Direction.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result.Scattered.Direction)
			}
		})
	}
}

func TestDielectric_RefractionBendsTowardNormal(t *testing.T) {
	glass := NewDielectric(1.5)
	direction := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), direction)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, _ := glass.Scatter(ray, hit, fixedSampler{v1: 0.999})
	refracted := result.Scattered.Direction

	if refracted.Y >= 0 {
		t.Fatalf("Refracted ray should continue downward, got %v", refracted)
	}
	// Entering a denser medium bends the ray toward the normal
	if math.Abs(refracted.X) >= math.Abs(direction.X) {
		t.Errorf("Refracted ray should bend toward the normal: in %v, out %v", direction, refracted)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched media", 0.7, 1.0, 0.0 + math.Pow(0.3, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Reflectance(%f, %f) = %f, expected %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
