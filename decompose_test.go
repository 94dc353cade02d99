package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrix2D_GetDecomposition(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		d := Identity.GetDecomposition()
		require.Equal(t, Identity, d.Translation)
		require.True(t, d.Matrix().PrecisionEquals(Identity, 1e-15))
	})

	t.Run("translation", func(t *testing.T) {
		d := Matrix2DOf(1, 2, 3, 4, 5, 6).GetDecomposition()
		require.Equal(t, Translation(5, 6), d.Translation)
	})

	t.Run("non-uniform scaling", func(t *testing.T) {
		d := NonUniformScaling(2, 3).GetDecomposition()

		// singular values are sorted, the rotations swap the axes
		require.Equal(t, NonUniformScaling(3, 2), d.Scale)
		require.True(t, d.Rotation.PrecisionEquals(Rotation(math.Pi/2), 1e-15))
		require.True(t, d.Rotation0.PrecisionEquals(Rotation(-math.Pi/2), 1e-15))
		require.True(t, d.Matrix().PrecisionEquals(NonUniformScaling(2, 3), 1e-15))
	})

	t.Run("reflection", func(t *testing.T) {
		d := XFlip().GetDecomposition()
		require.Equal(t, NonUniformScaling(1, -1), d.Scale)
		require.True(t, d.Matrix().PrecisionEquals(XFlip(), 1e-15))
	})

	t.Run("round trip", func(t *testing.T) {
		rng := newRand()

		for range 1000 {
			m := randomMatrix(rng)
			d := m.GetDecomposition()

			product := d.Translation.
				Multiply(d.Rotation).
				Multiply(d.Scale).
				Multiply(d.Rotation0)

			require.True(t, product.PrecisionEquals(m, 1e-10), "%s != %s", product, m)
			require.Equal(t, product, d.Matrix())
		}
	})

	t.Run("singular", func(t *testing.T) {
		m := Matrix2DOf(1, 2, 2, 4, 0, 0)
		d := m.GetDecomposition()
		require.InDelta(t, 0, d.Scale.D, 1e-15)
		require.True(t, d.Matrix().PrecisionEquals(m, 1e-10))
	})
}

func TestScale_String(t *testing.T) {
	require.Equal(t, "Scale(x=5, y=0.5)", Scale{X: 5, Y: 0.5}.String())
}
