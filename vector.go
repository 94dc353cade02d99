package affine

import "math"

// Vector2D is a free vector with a direction and a magnitude, but no location.
// Transforming a vector ignores the translation part of a Matrix2D.
type Vector2D struct {
	X, Y float64
}

func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// VectorFromPoints returns the vector pointing from p1 to p2.
func VectorFromPoints(p1, p2 Point2D) Vector2D {
	return Vector2D{
		X: p2.X - p1.X,
		Y: p2.Y - p1.Y,
	}
}

func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Magnitude returns the squared length of the vector. It is cheaper than Length
// and sufficient when only comparing lengths.
func (v Vector2D) Magnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of both vectors.
// The result is positive if other is counter-clockwise of v.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Determinant is the determinant of the 2x2 matrix with columns v and other.
// It is the same value as Cross.
func (v Vector2D) Determinant(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Unit returns a vector with the same direction and a length of one.
// The zero vector has no direction, its unit vector has NaN components.
func (v Vector2D) Unit() Vector2D {
	return v.Div(v.Length())
}

func (v Vector2D) Add(other Vector2D) Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vector2D) Sub(other Vector2D) Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vector2D) Mul(scalar float64) Vector2D {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vector2D) Div(scalar float64) Vector2D {
	v.X /= scalar
	v.Y /= scalar
	return v
}

// AngleBetween returns the signed angle in radians to rotate v onto other.
// The result is in the range (-π, π], positive angles are counter-clockwise.
func (v Vector2D) AngleBetween(other Vector2D) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())

	// rounding errors may push cos slightly out of the domain of acos
	cos = max(-1, min(cos, 1))

	radians := math.Acos(cos)
	if v.Cross(other) < 0 {
		return -radians
	}

	return radians
}

// Perp returns the vector rotated by 90° counter-clockwise.
func (v Vector2D) Perp() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Perpendicular returns the component of v that is perpendicular to other,
// that is v minus its projection onto other.
func (v Vector2D) Perpendicular(other Vector2D) Vector2D {
	return v.Sub(v.Project(other))
}

// Project returns the projection of v onto other. Projecting onto the zero
// vector gives NaN components.
func (v Vector2D) Project(other Vector2D) Vector2D {
	percent := v.Dot(other) / other.Dot(other)
	return other.Mul(percent)
}

// Transform applies the rotation, scale and skew of the matrix to the vector.
// The translation is not applied.
func (v Vector2D) Transform(m Matrix2D) Vector2D {
	return Vector2D{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Point returns the point reached when moving from Origin by v.
func (v Vector2D) Point() Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

func (v Vector2D) Equals(other Vector2D) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector2D) PrecisionEquals(other Vector2D, precision float64) bool {
	return math.Abs(v.X-other.X) < precision &&
		math.Abs(v.Y-other.Y) < precision
}

func (v Vector2D) String() string {
	return formatNumbers("vector", v.X, v.Y)
}
