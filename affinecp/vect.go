// Package affinecp converts between affine values and the vectors of the
// chipmunk physics engine.
package affinecp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/affine"
)

func Vect(p affine.Point2D) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func VectOfVector(v affine.Vector2D) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Point interprets a chipmunk vector as a position, e.g. the position of a body.
func Point(v cp.Vector) affine.Point2D {
	return affine.Point2D{X: v.X, Y: v.Y}
}

// Vector interprets a chipmunk vector as a direction, e.g. a velocity or a normal.
func Vector(v cp.Vector) affine.Vector2D {
	return affine.Vector2D{X: v.X, Y: v.Y}
}

// TransformVertices applies m to each vertex, including the translation.
// The input slice is not modified.
func TransformVertices(m affine.Matrix2D, verts []cp.Vector) []cp.Vector {
	result := make([]cp.Vector, len(verts))
	for idx, vert := range verts {
		result[idx] = Vect(Point(vert).Transform(m))
	}

	return result
}

// RotateVertices applies only the linear part of m to each vector. Use this for normals
// and offsets that must not be translated.
func RotateVertices(m affine.Matrix2D, verts []cp.Vector) []cp.Vector {
	result := make([]cp.Vector, len(verts))
	for idx, vert := range verts {
		result[idx] = VectOfVector(Vector(vert).Transform(m))
	}

	return result
}

// Bounds returns the bounding rectangle of the given vertices.
func Bounds(verts []cp.Vector) affine.Rect {
	points := make([]affine.Point2D, len(verts))
	for idx, vert := range verts {
		points[idx] = Point(vert)
	}

	return affine.BoundsOf(points...)
}
