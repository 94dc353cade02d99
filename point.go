package affine

import "math"

// Point2D is a location in the plane. Unlike a Vector2D, a point is
// affected by the translation part of a Matrix2D.
type Point2D struct {
	X, Y float64
}

// Origin is the point at (0, 0).
var Origin = Point2D{}

func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Clone returns a copy of the point, the same as an assignment.
func (p Point2D) Clone() Point2D {
	return p
}

// Add moves the point by the given vector.
func (p Point2D) Add(v Vector2D) Point2D {
	p.X += v.X
	p.Y += v.Y
	return p
}

// AddPoint adds the coordinates of another point componentwise.
func (p Point2D) AddPoint(other Point2D) Point2D {
	p.X += other.X
	p.Y += other.Y
	return p
}

// Sub moves the point by the negated vector.
func (p Point2D) Sub(v Vector2D) Point2D {
	p.X -= v.X
	p.Y -= v.Y
	return p
}

// SubPoint subtracts the coordinates of another point componentwise.
// Use VectorFromPoints to get the displacement between two points as a vector.
func (p Point2D) SubPoint(other Point2D) Point2D {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

func (p Point2D) Mul(scalar float64) Point2D {
	p.X *= scalar
	p.Y *= scalar
	return p
}

// Div divides both coordinates by scalar. Dividing by zero yields
// infinite or NaN coordinates.
func (p Point2D) Div(scalar float64) Point2D {
	p.X /= scalar
	p.Y /= scalar
	return p
}

// Equals reports whether both coordinates are exactly equal.
func (p Point2D) Equals(other Point2D) bool {
	return p.X == other.X && p.Y == other.Y
}

// PrecisionEquals reports whether both coordinates differ by less than precision.
func (p Point2D) PrecisionEquals(other Point2D, precision float64) bool {
	return math.Abs(p.X-other.X) < precision &&
		math.Abs(p.Y-other.Y) < precision
}

// Compare orders points by X first and by Y second. It returns -1, 0 or +1.
func (p Point2D) Compare(other Point2D) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// Lerp interpolates linearly between p (t=0) and other (t=1).
// Values of t outside of [0, 1] extrapolate along the same line.
func (p Point2D) Lerp(other Point2D, t float64) Point2D {
	omt := 1 - t
	return Point2D{
		X: p.X*omt + other.X*t,
		Y: p.Y*omt + other.Y*t,
	}
}

// DistanceFrom returns the euclidean distance between both points.
func (p Point2D) DistanceFrom(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point2D) Min(other Point2D) Point2D {
	return Point2D{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
	}
}

func (p Point2D) Max(other Point2D) Point2D {
	return Point2D{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
	}
}

// Transform applies the full affine transformation, including translation.
func (p Point2D) Transform(m Matrix2D) Point2D {
	return Point2D{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Vector returns the position vector of p, that is the vector from Origin to p.
func (p Point2D) Vector() Vector2D {
	return Vector2D{X: p.X, Y: p.Y}
}

func (p Point2D) String() string {
	return formatNumbers("point", p.X, p.Y)
}
