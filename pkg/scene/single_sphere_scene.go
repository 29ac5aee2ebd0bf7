package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewSingleSphereScene creates a minimal scene with one diffuse sphere in
// front of a pinhole camera and no ground, mostly useful for quick renders
// and deterministic comparisons.
func NewSingleSphereScene() *Scene {
	top, bottom := defaultSky()
	return &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90.0,
			AspectRatio: 2.0,
			Aperture:    0.0,
		},
		TopColor:    top,
		BottomColor: bottom,
		RenderConfig: RenderConfig{
			Width:           20,
			Height:          10,
			SamplesPerPixel: 1,
			MaxDepth:        1,
			Seed:            42,
		},
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
				material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		},
	}
}
