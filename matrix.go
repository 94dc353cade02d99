package affine

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned when inverting a matrix with a determinant of zero.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix2D is an affine transformation in two dimensions. It represents
// the following 3x3 matrix, where the last row is implicit:
//
//	[A C E]
//	[B D F]
//	[0 0 1]
//
// A point (x, y) is transformed to (A*x + C*y + E, B*x + D*y + F).
//
// The zero value is not the identity transformation, use Identity or NewMatrix2D.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transformation. It must not be modified.
var Identity = Matrix2D{A: 1, D: 1}

// NewMatrix2D returns the identity transformation.
func NewMatrix2D() Matrix2D {
	return Identity
}

// Matrix2DOf creates a matrix from its six components.
func Matrix2DOf(a, b, c, d, e, f float64) Matrix2D {
	return Matrix2D{A: a, B: b, C: c, D: d, E: e, F: f}
}

func Translation(tx, ty float64) Matrix2D {
	return Matrix2D{A: 1, B: 0, C: 0, D: 1, E: tx, F: ty}
}

func Scaling(scale float64) Matrix2D {
	return Matrix2D{A: scale, B: 0, C: 0, D: scale, E: 0, F: 0}
}

// ScalingAt scales uniformly while keeping center at its position.
func ScalingAt(scale float64, center Point2D) Matrix2D {
	return Matrix2D{
		A: scale,
		B: 0,
		C: 0,
		D: scale,
		E: center.X - center.X*scale,
		F: center.Y - center.Y*scale,
	}
}

func NonUniformScaling(scaleX, scaleY float64) Matrix2D {
	return Matrix2D{A: scaleX, B: 0, C: 0, D: scaleY, E: 0, F: 0}
}

// NonUniformScalingAt scales each axis independently while keeping center at its position.
func NonUniformScalingAt(scaleX, scaleY float64, center Point2D) Matrix2D {
	return Matrix2D{
		A: scaleX,
		B: 0,
		C: 0,
		D: scaleY,
		E: center.X - center.X*scaleX,
		F: center.Y - center.Y*scaleY,
	}
}

// Rotation returns a counter-clockwise rotation around the origin.
func Rotation(radians float64) Matrix2D {
	c := math.Cos(radians)
	s := math.Sin(radians)

	return Matrix2D{A: c, B: s, C: -s, D: c, E: 0, F: 0}
}

// RotationAt returns a rotation around center.
func RotationAt(radians float64, center Point2D) Matrix2D {
	c := math.Cos(radians)
	s := math.Sin(radians)

	return Matrix2D{
		A: c,
		B: s,
		C: -s,
		D: c,
		E: center.X - center.X*c + center.Y*s,
		F: center.Y - center.Y*c - center.X*s,
	}
}

// RotationFromVector returns the rotation that maps the x axis onto the direction of vec.
// The vector must not be the zero vector.
func RotationFromVector(vec Vector2D) Matrix2D {
	unit := vec.Unit()
	c := unit.X
	s := unit.Y

	return Matrix2D{A: c, B: s, C: -s, D: c, E: 0, F: 0}
}

// XFlip mirrors at the y axis.
func XFlip() Matrix2D {
	return Matrix2D{A: -1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// YFlip mirrors at the x axis.
func YFlip() Matrix2D {
	return Matrix2D{A: 1, B: 0, C: 0, D: -1, E: 0, F: 0}
}

func XSkew(radians float64) Matrix2D {
	t := math.Tan(radians)
	return Matrix2D{A: 1, B: 0, C: t, D: 1, E: 0, F: 0}
}

func YSkew(radians float64) Matrix2D {
	t := math.Tan(radians)
	return Matrix2D{A: 1, B: t, C: 0, D: 1, E: 0, F: 0}
}

// Multiply returns m * that. Transforming with the result is the same as
// transforming with that first and with m afterward.
func (m Matrix2D) Multiply(that Matrix2D) Matrix2D {
	if m.IsIdentity() {
		return that
	}

	if that.IsIdentity() {
		return m
	}

	return Matrix2D{
		A: m.A*that.A + m.C*that.B,
		B: m.B*that.A + m.D*that.B,
		C: m.A*that.C + m.C*that.D,
		D: m.B*that.C + m.D*that.D,
		E: m.A*that.E + m.C*that.F + m.E,
		F: m.B*that.E + m.D*that.F + m.F,
	}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix2D) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse transformation. An error wrapping ErrNotInvertible is
// returned if the determinant of the matrix is exactly zero.
func (m Matrix2D) Inverse() (Matrix2D, error) {
	inverse, ok := m.TryInverse()
	if !ok {
		return Matrix2D{}, fmt.Errorf("inverse of %s: %w", m, ErrNotInvertible)
	}

	return inverse, nil
}

// TryInverse returns the inverse transformation if possible.
func (m Matrix2D) TryInverse() (inverse Matrix2D, ok bool) {
	if m.IsIdentity() {
		return m, true
	}

	det1 := m.Determinant()
	if det1 == 0 {
		return Matrix2D{}, false
	}

	idet := 1 / det1
	det2 := m.F*m.C - m.E*m.D
	det3 := m.E*m.B - m.F*m.A

	inverse = Matrix2D{
		A: m.D * idet,
		B: -m.B * idet,
		C: -m.C * idet,
		D: m.A * idet,
		E: det2 * idet,
		F: det3 * idet,
	}

	return inverse, true
}

// MustInverse returns the inverse transformation.
// This method will panic if an inverse can not be calculated.
func (m Matrix2D) MustInverse() Matrix2D {
	inverse, err := m.Inverse()
	if err != nil {
		panic(err)
	}

	return inverse
}

func (m Matrix2D) Translate(tx, ty float64) Matrix2D {
	return Matrix2D{
		A: m.A,
		B: m.B,
		C: m.C,
		D: m.D,
		E: m.A*tx + m.C*ty + m.E,
		F: m.B*tx + m.D*ty + m.F,
	}
}

func (m Matrix2D) Scale(scale float64) Matrix2D {
	return Matrix2D{
		A: m.A * scale,
		B: m.B * scale,
		C: m.C * scale,
		D: m.D * scale,
		E: m.E,
		F: m.F,
	}
}

func (m Matrix2D) ScaleAt(scale float64, center Point2D) Matrix2D {
	dx := center.X - scale*center.X
	dy := center.Y - scale*center.Y

	return Matrix2D{
		A: m.A * scale,
		B: m.B * scale,
		C: m.C * scale,
		D: m.D * scale,
		E: m.A*dx + m.C*dy + m.E,
		F: m.B*dx + m.D*dy + m.F,
	}
}

func (m Matrix2D) ScaleNonUniform(scaleX, scaleY float64) Matrix2D {
	return Matrix2D{
		A: m.A * scaleX,
		B: m.B * scaleX,
		C: m.C * scaleY,
		D: m.D * scaleY,
		E: m.E,
		F: m.F,
	}
}

func (m Matrix2D) ScaleNonUniformAt(scaleX, scaleY float64, center Point2D) Matrix2D {
	dx := center.X - scaleX*center.X
	dy := center.Y - scaleY*center.Y

	return Matrix2D{
		A: m.A * scaleX,
		B: m.B * scaleX,
		C: m.C * scaleY,
		D: m.D * scaleY,
		E: m.A*dx + m.C*dy + m.E,
		F: m.B*dx + m.D*dy + m.F,
	}
}

func (m Matrix2D) Rotate(radians float64) Matrix2D {
	c := math.Cos(radians)
	s := math.Sin(radians)
	return m.rotateCosSin(c, s)
}

// RotateAt rotates around center, the center itself stays in place.
func (m Matrix2D) RotateAt(radians float64, center Point2D) Matrix2D {
	cos := math.Cos(radians)
	sin := math.Sin(radians)

	a := m.A*cos + m.C*sin
	b := m.B*cos + m.D*sin
	c := m.C*cos - m.A*sin
	d := m.D*cos - m.B*sin

	return Matrix2D{
		A: a,
		B: b,
		C: c,
		D: d,
		E: (m.A-a)*center.X + (m.C-c)*center.Y + m.E,
		F: (m.B-b)*center.X + (m.D-d)*center.Y + m.F,
	}
}

// RotateFromVector rotates by the angle between the x axis and vec.
// The vector must not be the zero vector.
func (m Matrix2D) RotateFromVector(vec Vector2D) Matrix2D {
	unit := vec.Unit()
	return m.rotateCosSin(unit.X, unit.Y)
}

func (m Matrix2D) rotateCosSin(c, s float64) Matrix2D {
	return Matrix2D{
		A: m.A*c + m.C*s,
		B: m.B*c + m.D*s,
		C: m.A*-s + m.C*c,
		D: m.B*-s + m.D*c,
		E: m.E,
		F: m.F,
	}
}

func (m Matrix2D) FlipX() Matrix2D {
	return Matrix2D{A: -m.A, B: -m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func (m Matrix2D) FlipY() Matrix2D {
	return Matrix2D{A: m.A, B: m.B, C: -m.C, D: -m.D, E: m.E, F: m.F}
}

func (m Matrix2D) SkewX(radians float64) Matrix2D {
	t := math.Tan(radians)

	return Matrix2D{
		A: m.A,
		B: m.B,
		C: m.C + m.A*t,
		D: m.D + m.B*t,
		E: m.E,
		F: m.F,
	}
}

func (m Matrix2D) SkewY(radians float64) Matrix2D {
	t := math.Tan(radians)

	return Matrix2D{
		A: m.A + m.C*t,
		B: m.B + m.D*t,
		C: m.C,
		D: m.D,
		E: m.E,
		F: m.F,
	}
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Matrix2D) IsIdentity() bool {
	return m.A == 1 && m.B == 0 &&
		m.C == 0 && m.D == 1 &&
		m.E == 0 && m.F == 0
}

// IsInvertible reports whether the determinant is non zero. No tolerance is applied,
// nearly singular matrices are considered invertible.
func (m Matrix2D) IsInvertible() bool {
	return m.Determinant() != 0
}

// TransformPoint is the same as p.Transform(m).
func (m Matrix2D) TransformPoint(p Point2D) Point2D {
	return p.Transform(m)
}

// TransformVector is the same as v.Transform(m).
func (m Matrix2D) TransformVector(v Vector2D) Vector2D {
	return v.Transform(m)
}

func (m Matrix2D) Equals(that Matrix2D) bool {
	return m == that
}

// PrecisionEquals reports whether all six components differ by less than precision.
func (m Matrix2D) PrecisionEquals(that Matrix2D, precision float64) bool {
	return math.Abs(m.A-that.A) < precision &&
		math.Abs(m.B-that.B) < precision &&
		math.Abs(m.C-that.C) < precision &&
		math.Abs(m.D-that.D) < precision &&
		math.Abs(m.E-that.E) < precision &&
		math.Abs(m.F-that.F) < precision
}

func (m Matrix2D) String() string {
	return formatNumbers("matrix", m.A, m.B, m.C, m.D, m.E, m.F)
}
