package core

import "math/rand"

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter computes the scattered ray and attenuation for an incoming
	// ray at the given hit. Returns false when the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to gathered light
}

// HitRecord contains information about a ray-object intersection.
// It is created fresh per intersection query and only lives for the
// evaluation of that one hit.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, facing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be intersected by rays
type Shape interface {
	// Hit tests the ray against the shape within the parametric range
	// [tMin, tMax]. Shapes are never mutated by intersection queries.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
