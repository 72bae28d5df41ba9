package material

import "github.com/df07/go-weekend-raytracer/pkg/core"

// fixedSampler returns the same values on every draw, making scatter directions predictable.
// core.SampleOnUnitSphere maps Vec2{0, 0} to +Z and Vec2{1, 0} to -Z.
type fixedSampler struct {
	v1 float64
	v2 core.Vec2
}

func (f fixedSampler) Get1D() float64 { return f.v1 }
func (f fixedSampler) Get2D() core.Vec2 { return f.v2 }
func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.v2.X, f.v2.Y, f.v1) }

var (
	samplePlusZ  = core.NewVec2(0, 0)
	sampleMinusZ = core.NewVec2(1, 0)
)

const tolerance = 1e-9
