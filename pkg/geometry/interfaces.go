package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Hittable is anything a ray can be intersected with: single primitives and whole scenes.
type Hittable interface {
	// Hit returns the nearest intersection with t strictly inside rayT, if any.
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}
