package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// RenderConfig contains image and sampling configuration for a scene
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base random seed
}

// Scene contains all the elements needed for rendering: the camera, the
// shapes, the sky colors, and recommended render settings. Built once,
// immutable during rendering.
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       []core.Shape
	TopColor     core.Vec3 // Sky color at the zenith
	BottomColor  core.Vec3 // Sky color at the horizon
	RenderConfig RenderConfig

	camera *renderer.Camera
}

// defaultSky is the white-to-blue gradient background
func defaultSky() (top, bottom core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)
}

// GetCamera returns the scene camera, constructing it on first use
func (s *Scene) GetCamera() *renderer.Camera {
	if s.camera == nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
	return s.camera
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}
