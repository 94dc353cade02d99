package affine

import (
	"math"
	"math/rand/v2"
)

// randomIn returns a value uniformly sampled from the given range, excluding max.
func randomIn(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

func randomAngle(rng *rand.Rand) float64 {
	return randomIn(rng, -math.Pi, math.Pi)
}

func randomPoint(rng *rand.Rand) Point2D {
	return Point2D{X: randomIn(rng, -100, 100), Y: randomIn(rng, -100, 100)}
}

// randomMatrix returns a matrix with all six components sampled from [-10, 10).
// The result is invertible with probability one, but might be badly conditioned.
func randomMatrix(rng *rand.Rand) Matrix2D {
	return Matrix2D{
		A: randomIn(rng, -10, 10),
		B: randomIn(rng, -10, 10),
		C: randomIn(rng, -10, 10),
		D: randomIn(rng, -10, 10),
		E: randomIn(rng, -10, 10),
		F: randomIn(rng, -10, 10),
	}
}

// randomTransform composes a well conditioned matrix from elementary transformations.
func randomTransform(rng *rand.Rand) Matrix2D {
	return Identity.
		Translate(randomIn(rng, -50, 50), randomIn(rng, -50, 50)).
		Rotate(randomAngle(rng)).
		ScaleNonUniform(randomIn(rng, 0.5, 2), randomIn(rng, 0.5, 2)).
		SkewX(randomIn(rng, -0.5, 0.5))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
