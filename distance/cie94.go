package distance

import (
	"math"

	"github.com/hupe1980/deltae/model"
)

// CIE94Params holds the CIE94 weighting factors.
type CIE94Params struct {
	KL float64
	KC float64
	KH float64
	K1 float64
	K2 float64
}

var (
	// GraphicArts is the CIE94 parameter set for graphic arts.
	GraphicArts = CIE94Params{KL: 1, KC: 1, KH: 1, K1: 0.045, K2: 0.015}

	// Textiles is the CIE94 parameter set for textiles.
	Textiles = CIE94Params{KL: 2, KC: 1, KH: 1, K1: 0.048, K2: 0.014}
)

// CIE94 returns the CIE94 difference of c1 against c2.
//
// The chroma and hue weights use c1's chroma only. A slightly negative hue
// term caused by cancellation is tolerated and the result is clamped to 0.
func CIE94(c1, c2 model.Triplet, p CIE94Params) float64 {
	dl := c1[0] - c2[0]
	chroma1 := hypot(c1[1], c1[2])
	chroma2 := hypot(c2[1], c2[2])
	dc := chroma1 - chroma2
	da := c1[1] - c2[1]
	db := c1[2] - c2[2]
	dh := da*da + db*db - dc*dc

	const sl = 1.0
	sc := 1 + p.K1*chroma1
	sh := 1 + p.K2*chroma1

	res := sq(dl/(p.KL*sl)) + sq(dc/(p.KC*sc)) + dh/sq(p.KH*sh)
	if res > 0 {
		return math.Sqrt(res)
	}
	return 0
}

// CIE94GraphicArts returns CIE94 with the GraphicArts parameters.
func CIE94GraphicArts(c1, c2 model.Triplet) float64 {
	return CIE94(c1, c2, GraphicArts)
}

// CIE94Textiles returns CIE94 with the Textiles parameters.
func CIE94Textiles(c1, c2 model.Triplet) float64 {
	return CIE94(c1, c2, Textiles)
}
