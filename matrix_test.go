package affine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrix2D_New(t *testing.T) {
	m := NewMatrix2D()
	require.Equal(t, Matrix2D{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}, m)
	require.Equal(t, Identity, m)
	require.True(t, Identity.IsIdentity())
	require.False(t, Matrix2D{}.IsIdentity())
}

func TestMatrix2D_String(t *testing.T) {
	require.Equal(t, "matrix(1,0,0,1,0,0)", NewMatrix2D().String())
	require.Equal(t, "matrix(1.5,0,0,0.5,-10,20)", Matrix2DOf(1.5, 0, 0, 0.5, -10, 20).String())
}

func TestMatrix2D_StaticEqualsInstance(t *testing.T) {
	center := NewPoint2D(10, 20)
	angle := DegToRad(45)
	skew := DegToRad(30)

	cases := []struct {
		name     string
		static   Matrix2D
		instance Matrix2D
	}{
		{"translation", Translation(10, 20), NewMatrix2D().Translate(10, 20)},
		{"scaling", Scaling(1.5), NewMatrix2D().Scale(1.5)},
		{"scalingAt", ScalingAt(1.5, center), NewMatrix2D().ScaleAt(1.5, center)},
		{"non-uniform scaling", NonUniformScaling(1.5, 0.5), NewMatrix2D().ScaleNonUniform(1.5, 0.5)},
		{"non-uniform scalingAt", NonUniformScalingAt(1.5, 0.5, center), NewMatrix2D().ScaleNonUniformAt(1.5, 0.5, center)},
		{"rotation", Rotation(angle), NewMatrix2D().Rotate(angle)},
		{"rotation from vector", RotationFromVector(NewVector2D(10, 20)), NewMatrix2D().RotateFromVector(NewVector2D(10, 20))},
		{"x flip", XFlip(), NewMatrix2D().FlipX()},
		{"y flip", YFlip(), NewMatrix2D().FlipY()},
		{"x skew", XSkew(skew), NewMatrix2D().SkewX(skew)},
		{"y skew", YSkew(skew), NewMatrix2D().SkewY(skew)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.True(t, c.static.Equals(c.instance), "%s != %s", c.static, c.instance)
		})
	}

	t.Run("rotationAt", func(t *testing.T) {
		m1 := RotationAt(angle, center)
		m2 := NewMatrix2D().RotateAt(angle, center)
		require.True(t, m1.PrecisionEquals(m2, 1e-12), "%s != %s", m1, m2)
	})
}

func TestMatrix2D_CenterStaysFixed(t *testing.T) {
	center := NewPoint2D(10, 20)
	base := Translation(5, -3).Rotate(0.3)

	matrices := map[string]Matrix2D{
		"ScalingAt":           ScalingAt(3, center),
		"NonUniformScalingAt": NonUniformScalingAt(3, -2, center),
		"RotationAt":          RotationAt(1.2, center),
	}

	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			require.True(t, center.Transform(m).PrecisionEquals(center, 1e-12))
		})
	}

	// the instance variants fold the center correction into the existing transformation
	instances := map[string][2]Matrix2D{
		"ScaleAt":           {base.ScaleAt(3, center), base.Multiply(ScalingAt(3, center))},
		"ScaleNonUniformAt": {base.ScaleNonUniformAt(3, -2, center), base.Multiply(NonUniformScalingAt(3, -2, center))},
		"RotateAt":          {base.RotateAt(1.2, center), base.Multiply(RotationAt(1.2, center))},
	}

	for name, pair := range instances {
		t.Run(name, func(t *testing.T) {
			require.True(t, pair[0].PrecisionEquals(pair[1], 1e-10), "%s != %s", pair[0], pair[1])
		})
	}
}

func TestMatrix2D_InstanceEqualsMultiply(t *testing.T) {
	rng := newRand()

	for range 100 {
		m := randomMatrix(rng)
		v := NewVector2D(randomIn(rng, -5, 5), randomIn(rng, -5, 5))

		pairs := [][2]Matrix2D{
			{m.Translate(3, -4), m.Multiply(Translation(3, -4))},
			{m.Scale(2.5), m.Multiply(Scaling(2.5))},
			{m.ScaleNonUniform(2, -0.5), m.Multiply(NonUniformScaling(2, -0.5))},
			{m.Rotate(0.7), m.Multiply(Rotation(0.7))},
			{m.RotateFromVector(v), m.Multiply(RotationFromVector(v))},
			{m.FlipX(), m.Multiply(XFlip())},
			{m.FlipY(), m.Multiply(YFlip())},
			{m.SkewX(0.4), m.Multiply(XSkew(0.4))},
			{m.SkewY(0.4), m.Multiply(YSkew(0.4))},
		}

		for _, pair := range pairs {
			require.True(t, pair[0].PrecisionEquals(pair[1], 1e-10), "%s != %s", pair[0], pair[1])
		}
	}
}

func TestMatrix2D_Multiply(t *testing.T) {
	m := Matrix2DOf(1, 2, 3, 4, 5, 6)

	t.Run("identity", func(t *testing.T) {
		require.Equal(t, m, Identity.Multiply(m))
		require.Equal(t, m, m.Multiply(Identity))
	})

	t.Run("values", func(t *testing.T) {
		n := Matrix2DOf(7, 8, 9, 10, 11, 12)
		require.Equal(t, Matrix2DOf(31, 46, 39, 58, 52, 76), m.Multiply(n))
	})

	t.Run("order", func(t *testing.T) {
		// translate first, then scale
		tr := Scaling(2).Multiply(Translation(10, 0))
		require.Equal(t, NewPoint2D(22, 0), NewPoint2D(1, 0).Transform(tr))

		// scale first, then translate
		tr = Translation(10, 0).Multiply(Scaling(2))
		require.Equal(t, NewPoint2D(12, 0), NewPoint2D(1, 0).Transform(tr))
	})

	t.Run("rotations", func(t *testing.T) {
		r := Rotation(math.Pi).Multiply(Rotation(math.Pi / 2))
		require.True(t, r.PrecisionEquals(Rotation(math.Pi*1.5), 1e-15))
	})
}

func TestMatrix2D_Inverse(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		inverse, err := Identity.Inverse()
		require.NoError(t, err)
		require.Equal(t, Identity, inverse)
	})

	t.Run("values", func(t *testing.T) {
		inverse, err := Matrix2DOf(2, 0, 0, 4, 6, 8).Inverse()
		require.NoError(t, err)
		require.Equal(t, Matrix2DOf(0.5, 0, 0, 0.25, -3, -2), inverse)
	})

	t.Run("rotation", func(t *testing.T) {
		m := Rotation(2)
		inverse := m.MustInverse()
		require.NotEqual(t, m, inverse)
		require.True(t, inverse.PrecisionEquals(Rotation(-2), 1e-15))
		require.True(t, inverse.MustInverse().PrecisionEquals(m, 1e-15))
	})

	t.Run("random", func(t *testing.T) {
		rng := newRand()

		for range 1000 {
			m := randomTransform(rng)

			inverse, err := m.Inverse()
			require.NoError(t, err)

			require.True(t, m.Multiply(inverse).PrecisionEquals(Identity, 1e-10))
			require.True(t, inverse.Multiply(m).PrecisionEquals(Identity, 1e-10))

			p := randomPoint(rng)
			require.True(t, p.Transform(m).Transform(inverse).PrecisionEquals(p, 1e-10))
		}
	})
}

func TestMatrix2D_NotInvertible(t *testing.T) {
	singular := []Matrix2D{
		NonUniformScaling(0, 1),
		Scaling(0),
		Matrix2DOf(1, 2, 2, 4, 5, 6),
		{},
	}

	for _, m := range singular {
		require.False(t, m.IsInvertible())

		_, err := m.Inverse()
		require.ErrorIs(t, err, ErrNotInvertible)
		require.True(t, errors.Is(err, ErrNotInvertible))

		_, ok := m.TryInverse()
		require.False(t, ok)

		require.Panics(t, func() { m.MustInverse() })
	}

	_, err := NonUniformScaling(0, 1).Inverse()
	require.EqualError(t, err, "inverse of matrix(0,0,0,1,0,0): matrix is not invertible")

	// nearly singular matrices are still invertible
	require.True(t, NonUniformScaling(1e-300, 1).IsInvertible())
}

func TestMatrix2D_Determinant(t *testing.T) {
	require.Equal(t, 1.0, Identity.Determinant())
	require.Equal(t, -2.0, Matrix2DOf(1, 2, 3, 4, 5, 6).Determinant())
	require.Equal(t, -1.0, XFlip().Determinant())
}

func TestMatrix2D_Equals(t *testing.T) {
	m := Matrix2DOf(1, 2, 3, 4, 5, 6)

	require.True(t, m.Equals(Matrix2DOf(1, 2, 3, 4, 5, 6)))
	require.False(t, m.Equals(Matrix2DOf(1, 2, 3, 4, 5, 7)))

	require.True(t, m.PrecisionEquals(Matrix2DOf(1, 2, 3, 4, 5, 6.05), 0.1))
	require.False(t, m.PrecisionEquals(Matrix2DOf(1.2, 2, 3, 4, 5, 6), 0.1))
}

func TestMatrix2D_GetScale(t *testing.T) {
	require.Equal(t, Scale{X: 1, Y: 1}, Identity.GetScale())
	require.Equal(t, Scale{X: 5, Y: 10}, Matrix2DOf(3, 6, 4, 8, 100, 100).GetScale())

	// mirroring is not visible in the scale
	require.Equal(t, Scale{X: 1, Y: 1}, XFlip().GetScale())
}
