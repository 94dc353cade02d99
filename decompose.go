package affine

import (
	"fmt"
	"math"
)

// Scale holds the length of the transformed basis vectors of a Matrix2D.
type Scale struct {
	X, Y float64
}

func (s Scale) String() string {
	return fmt.Sprintf("Scale(x=%s, y=%s)", formatNumber(s.X), formatNumber(s.Y))
}

// GetScale returns the magnitude of each row of the linear part. The values are always
// positive, a mirrored matrix can not be detected using GetScale.
func (m Matrix2D) GetScale() Scale {
	return Scale{
		X: math.Sqrt(m.A*m.A + m.C*m.C),
		Y: math.Sqrt(m.B*m.B + m.D*m.D),
	}
}

// Decomposition splits an affine transformation into simpler parts.
// Multiplying Translation, Rotation, Scale and Rotation0 in that order
// results in the decomposed matrix again.
type Decomposition struct {
	Translation Matrix2D
	Rotation    Matrix2D
	Scale       Matrix2D
	Rotation0   Matrix2D
}

// Matrix multiplies the parts of the decomposition back into a single matrix.
func (d Decomposition) Matrix() Matrix2D {
	return d.Translation.
		Multiply(d.Rotation).
		Multiply(d.Scale).
		Multiply(d.Rotation0)
}

// GetDecomposition calculates the singular value decomposition of the matrix
// using the method described by Jim Blinn, see http://dx.doi.org/10.1109/38.486688
//
// The scale in y direction is negative if the matrix contains a reflection.
func (m Matrix2D) GetDecomposition() Decomposition {
	E := (m.A + m.D) * 0.5
	F := (m.A - m.D) * 0.5
	G := (m.B + m.C) * 0.5
	H := (m.B - m.C) * 0.5

	Q := math.Sqrt(E*E + H*H)
	R := math.Sqrt(F*F + G*G)
	scaleX := Q + R
	scaleY := Q - R

	a1 := math.Atan2(G, F)
	a2 := math.Atan2(H, E)
	theta := (a2 - a1) * 0.5
	phi := (a2 + a1) * 0.5

	return Decomposition{
		Translation: Translation(m.E, m.F),
		Rotation:    Rotation(phi),
		Scale:       NonUniformScaling(scaleX, scaleY),
		Rotation0:   Rotation(theta),
	}
}
