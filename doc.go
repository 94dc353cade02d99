// Package affine provides immutable 2d geometry primitives.
//
// It includes a point type called Point2D, a free vector type Vector2D and an
// affine transformation matrix named Matrix2D. All types are small value types, every
// operation returns a new value and never modifies its receiver.
//
// Points are affected by the translation of a Matrix2D, vectors are not.
package affine
