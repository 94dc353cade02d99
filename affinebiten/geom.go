// Package affinebiten converts between affine values and the types used by ebiten.
package affinebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/affine"
)

// GeoM returns an ebiten.GeoM describing the same transformation as m.
//
// ebiten stores the diagonal of the matrix relative to one, converting a value back
// using FromGeoM might introduce a rounding error in A and D.
func GeoM(m affine.Matrix2D) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	return g
}

// FromGeoM returns the matrix describing the same transformation as g.
func FromGeoM(g ebiten.GeoM) affine.Matrix2D {
	return affine.Matrix2D{
		A: g.Element(0, 0),
		B: g.Element(1, 0),
		C: g.Element(0, 1),
		D: g.Element(1, 1),
		E: g.Element(0, 2),
		F: g.Element(1, 2),
	}
}

// Apply transforms a point using the given GeoM.
func Apply(g ebiten.GeoM, p affine.Point2D) affine.Point2D {
	x, y := g.Apply(p.X, p.Y)
	return affine.Point2D{X: x, Y: y}
}

// DrawImageOptions returns options to draw an image transformed by m.
func DrawImageOptions(m affine.Matrix2D) *ebiten.DrawImageOptions {
	var op ebiten.DrawImageOptions
	op.GeoM = GeoM(m)
	return &op
}

// Concat appends m to g, such that m is applied after the transformation already in g.
// This mirrors ebiten.GeoM.Concat, which also applies its argument last.
func Concat(g ebiten.GeoM, m affine.Matrix2D) ebiten.GeoM {
	g.Concat(GeoM(m))
	return g
}
