package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// ShapeList is an ordered collection of shapes that itself satisfies the
// Shape interface, returning the nearest hit across all members.
type ShapeList struct {
	Shapes []core.Shape
}

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Clear removes all shapes from the list
func (l *ShapeList) Clear() {
	l.Shapes = nil
}

// Hit scans all shapes in insertion order, shrinking the upper bound to the
// closest hit seen so far. Later candidates only win when strictly nearer,
// so the first shape wins an exact tie.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
