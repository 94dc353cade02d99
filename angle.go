package affine

import "math"

// DegToRad converts an angle in degrees into radians, as expected by
// Rotation, Rotate and the skew functions.
func DegToRad(deg float64) float64 {
	return math.Pi / 180 * deg
}

func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// NormalizeAngle returns the angle normalized to the range [-π, π)
func NormalizeAngle(rad float64) float64 {
	angle := math.Mod(rad+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return angle - math.Pi
}

// AngleDifference returns the smallest signed difference between two angles,
// normalized to the range [-π, π)
func AngleDifference(a, b float64) float64 {
	return NormalizeAngle(a - b)
}
