package distance

import "math"

const twoPi = 2 * math.Pi

func radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// hueAngle returns atan2(b, a) in [0, 2π), or 0 when chroma is zero and the
// hue is undefined.
func hueAngle(b, a, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	h := math.Atan2(b, a)
	if h < 0 {
		h += twoPi
	}
	return h
}

func hypot(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

func sq(x float64) float64 { return x * x }
