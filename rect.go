package affine

// Rect is an axis aligned rectangle. Min holds the smallest coordinates on both axis,
// Max the largest.
type Rect struct {
	Min, Max Point2D
}

// RectWithPoints returns the smallest rectangle containing both points.
func RectWithPoints(a, b Point2D) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func RectWithOriginAndSize(origin Point2D, size Vector2D) Rect {
	return RectWithPoints(origin, origin.Add(size))
}

// BoundsOf returns the bounding box of the given points.
// The bounding box of no points is the empty rectangle at Origin.
func BoundsOf(points ...Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min = r.Min.Min(p)
		r.Max = r.Max.Max(p)
	}

	return r
}

func (r Rect) Center() Point2D {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rect) Size() Vector2D {
	return VectorFromPoints(r.Min, r.Max)
}

func (r Rect) TopLeft() Point2D {
	return r.Min
}

func (r Rect) TopRight() Point2D {
	return Point2D{X: r.Max.X, Y: r.Min.Y}
}

func (r Rect) BottomLeft() Point2D {
	return Point2D{X: r.Min.X, Y: r.Max.Y}
}

func (r Rect) BottomRight() Point2D {
	return r.Max
}

// Corners returns the four corners in clockwise order, starting at TopLeft.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

func (r Rect) Translate(offset Vector2D) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// Transform returns the bounding box of the transformed rectangle.
// For rotations and skews, the result is larger than the rectangle itself.
func (r Rect) Transform(m Matrix2D) Rect {
	corners := r.Corners()
	for idx := range corners {
		corners[idx] = corners[idx].Transform(m)
	}

	return BoundsOf(corners[:]...)
}

// Contains reports whether p is inside the rectangle, including its border.
func (r Rect) Contains(p Point2D) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) String() string {
	return formatNumbers("rect", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
