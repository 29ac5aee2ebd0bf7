package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// CameraConfig contains camera placement and lens parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (lookfrom)
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // Up direction for the camera
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width divided by height
	Aperture      float64   // Lens diameter (0 = pinhole, perfect focus)
	FocusDistance float64   // Distance to the plane of perfect focus (0 = auto)
}

// Validate checks the config against the ranges the camera model supports
func (config CameraConfig) Validate() error {
	if config.VFov <= 0 || config.VFov >= 180 {
		return fmt.Errorf("vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.Aperture < 0 {
		return fmt.Errorf("aperture must be non-negative, got %g", config.Aperture)
	}
	if config.FocusDistance < 0 {
		return fmt.Errorf("focus distance must be non-negative, got %g", config.FocusDistance)
	}
	return nil
}

// Camera generates primary rays for rendering, modeling a thin lens with a
// positionable orientation and adjustable field of view. Immutable once
// constructed; safe for concurrent GetRay calls.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		// Auto-focus on the look-at point
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through normalized image-plane coordinates (s, t)
// where 0 <= s,t <= 1. With a non-zero aperture the ray originates from a
// random point on the lens disk, producing depth of field.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
