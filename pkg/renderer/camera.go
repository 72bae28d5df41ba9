package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrInvalidConfig is wrapped by every camera configuration validation error
var ErrInvalidConfig = errors.New("invalid camera config")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	VFov            float64   // Vertical field of view in degrees, (0, 180)
	LookFrom        core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Up direction hint, must not be parallel to the view direction
	AspectRatio     float64   // Width / height
	Width           int       // Image width in pixels
	SamplesPerPixel int       // Camera rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	DefocusAngle    float64   // Aperture cone angle in degrees, 0 disables depth of field
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Validate checks the configuration against the camera's preconditions
func (c CameraConfig) Validate() error {
	switch {
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vfov %g must be in (0, 180)", ErrInvalidConfig, c.VFov)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidConfig, c.AspectRatio)
	case c.Width < 1:
		return fmt.Errorf("%w: width %d must be at least 1", ErrInvalidConfig, c.Width)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel %d must be at least 1", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	case !(c.DefocusAngle >= 0):
		return fmt.Errorf("%w: defocus angle %g must not be negative", ErrInvalidConfig, c.DefocusAngle)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance %g must be positive", ErrInvalidConfig, c.FocusDistance)
	}

	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look from %v and look at %v coincide", ErrInvalidConfig, c.LookFrom, c.LookAt)
	}
	if c.Up.Cross(view.Normalize()).NearZero() {
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidConfig, c.Up)
	}

	return nil
}

// Camera generates rays for rendering. All derived state is fixed at construction.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3
	pixel00Loc   core.Vec3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3 // Offset to pixel to the right
	pixelDeltaV  core.Vec3 // Offset to pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from configuration, failing fast on invalid parameters
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))
	center := config.LookFrom

	// Viewport dimensions sit on the focus plane
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(imageHeight))

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		center:       center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the image height derived from width and aspect ratio
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SamplesPerPixel returns the number of rays cast per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.config.SamplesPerPixel
}

// MaxDepth returns the bounce budget for each camera ray
func (c *Camera) MaxDepth() int {
	return c.config.MaxDepth
}

// Center returns the eye position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// Basis returns the camera frame: u points right, v up, w backward (away from the target)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// PixelCenter returns the world-space center of pixel (i, j) on the focus plane
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay generates a camera ray for pixel (i, j), where i is the column and j the row from the top.
// With more than one sample per pixel the target is jittered inside the pixel square; with a
// positive defocus angle the origin is sampled from the defocus disk.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.config.SamplesPerPixel > 1 {
		offset = core.SampleSquare(sampler.Get2D())
	}

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
