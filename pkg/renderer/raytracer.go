package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; each scanline derives its own stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []core.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	world  *geometry.ShapeList
	camera *Camera
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the given scene and image size.
// The scene's camera and aggregate are captured here, before any worker
// touches them.
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		world:  geometry.NewShapeList(scene.GetShapes()...),
		camera: scene.GetCamera(),
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		logger: NewDefaultLogger(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger replaces the progress logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// backgroundGradient returns the sky color for a ray that escaped the scene
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map direction y from [-1,1] to [0,1] for a vertical gradient
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}

// RayColor is the recursive radiance estimator: it finds the nearest hit,
// asks the material to scatter, and gathers the scattered ray's radiance
// attenuated by the surface color. depth is the remaining bounce budget.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// tMin of 0.001 avoids shadow acne from rays re-hitting their origin
	hit, isHit := rt.world.Hit(r, 0.001, math.MaxFloat64)
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, random))
}

// rayColorIterative is the loop form of RayColor, carrying the product of
// attenuations instead of recursing. It performs the exact same sequence of
// random draws and produces identical results.
func (rt *Raytracer) rayColorIterative(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := rt.world.Hit(r, 0.001, math.MaxFloat64)
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, random)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	return core.Vec3{}
}

// samplePixel accumulates jittered samples for pixel (i, j) and returns the
// averaged color
func (rt *Raytracer) samplePixel(camera *Camera, i, j int, random *rand.Rand) core.Vec3 {
	var ps PixelStats

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + random.Float64()) / float64(rt.width-1)
		t := (float64(j) + random.Float64()) / float64(rt.height-1)

		ray := camera.GetRay(s, t, random)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, random))
	}

	return ps.GetColor()
}

// renderScanline renders image row j into img. Row y coordinates are flipped
// so that j counts up from the bottom of the image, matching the camera's
// t axis, while the image stores rows top to bottom.
func (rt *Raytracer) renderScanline(j int, img *image.RGBA) int {
	// Per-scanline stream keeps output identical for any worker count
	random := rand.New(rand.NewSource(rt.config.Seed + int64(j)))

	for i := 0; i < rt.width; i++ {
		colorVec := rt.samplePixel(rt.camera, i, j, random)
		img.SetRGBA(i, rt.height-1-j, vec3ToColor(colorVec))
	}

	return rt.width * rt.config.SamplesPerPixel
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma-2 correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}
