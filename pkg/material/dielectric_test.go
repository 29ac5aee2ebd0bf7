package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestDielectric_AlwaysScattersWhite(t *testing.T) {
	glass := NewDielectric(1.5)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  glass,
	}

	for seed := int64(0); seed < 100; seed++ {
		random := rand.New(rand.NewSource(seed))
		result, scattered := glass.Scatter(ray, hit, random)

		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray exiting the glass: 1.5·sinθ > 1, refraction impossible
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // Exiting the material
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatal("Test geometry does not force total internal reflection")
	}

	expected := Reflect(rayDirection, hit.Normal)
	for seed := int64(0); seed < 100; seed++ {
		random := rand.New(rand.NewSource(seed))
		result, _ := glass.Scatter(ray, hit, random)

		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected forced reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestDielectric_SquareOnRefraction(t *testing.T) {
	glass := NewDielectric(1.5)

	// Square-on hit: cosθ = 1, so Schlick reflectance is r0 = ((1-1.5)/(1+1.5))² = 0.04.
	// Any uniform draw above 0.04 refracts, and at normal incidence the
	// refracted direction continues straight through.
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  glass,
	}

	refracted := 0
	for seed := int64(0); seed < 100; seed++ {
		random := rand.New(rand.NewSource(seed))
		result, _ := glass.Scatter(ray, hit, random)

		direction := result.Scattered.Direction.Normalize()
		if direction.Subtract(core.NewVec3(0, -1, 0)).Length() < 1e-9 {
			refracted++
		} else if direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
			t.Fatalf("Scattered direction %v is neither straight refraction nor reflection", direction)
		}
	}

	// With 4% reflectance nearly all draws refract
	if refracted < 80 {
		t.Errorf("Expected the vast majority of square-on rays to refract, got %d/100", refracted)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45° incidence entering glass: sinθ_t = sin45°/1.5
	uv := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5

	refracted := Refract(uv, n, ratio).Normalize()

	sinTransmit := (math.Sqrt2 / 2) * ratio
	expected := core.NewVec3(sinTransmit, -math.Sqrt(1-sinTransmit*sinTransmit), 0)

	if refracted.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected refracted direction %v, got %v", expected, refracted)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence reduces to r0
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	if got := Reflectance(1.0, 1.0/1.5); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Expected reflectance %f at normal incidence, got %f", r0, got)
	}

	// Grazing incidence approaches total reflection
	if got := Reflectance(0.0, 1.0/1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", got)
	}
}
