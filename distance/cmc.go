package distance

import (
	"math"

	"github.com/hupe1980/deltae/model"
)

// CMCParams holds the CMC l:c weighting factors.
type CMCParams struct {
	KL float64
	KC float64
}

var (
	// CMC1To1Params is the CMC 1:1 parameter set (perceptibility).
	CMC1To1Params = CMCParams{KL: 1, KC: 1}

	// CMC2To1Params is the CMC 2:1 parameter set (acceptability).
	CMC2To1Params = CMCParams{KL: 2, KC: 1}
)

var (
	rad35  = radians(35)
	rad164 = radians(164)
	rad168 = radians(168)
	rad345 = radians(345)
)

// CMC returns the CMC l:c difference of c1 against c2.
//
// All weights are taken from c1. The hue term's radicand is not clamped, so
// inputs whose difference cancels to a negative radicand yield NaN.
func CMC(c1, c2 model.Triplet, p CMCParams) float64 {
	dL := c2[0] - c1[0]
	da := c2[1] - c1[1]
	db := c2[2] - c1[2]
	chroma1 := hypot(c1[1], c1[2])
	chroma2 := hypot(c2[1], c2[2])
	dC := chroma2 - chroma1
	dH := math.Sqrt(da*da + db*db - dC*dC)

	h1 := hueAngle(c1[2], c1[1], chroma1)

	chroma1Sq := chroma1 * chroma1
	f := chroma1Sq / math.Sqrt(chroma1Sq*chroma1Sq+1900)

	var t float64
	if h1 > rad164 && h1 <= rad345 {
		t = 0.56 + math.Abs(0.2*math.Cos(h1+rad168))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(h1+rad35))
	}

	var sL float64
	if c1[0] < 16 {
		sL = 0.511
	} else {
		sL = 0.040975 * c1[0] / (1 + 0.01765*c1[0])
	}
	sC := 0.0638*chroma1/(1+0.0131*chroma1) + 0.638
	sH := sC * (f*t + 1 - f)

	return math.Sqrt(sq(dL/(p.KL*sL)) + sq(dC/(p.KC*sC)) + sq(dH/sH))
}

// CMC1To1 returns CMC with l=1, c=1.
func CMC1To1(c1, c2 model.Triplet) float64 {
	return CMC(c1, c2, CMC1To1Params)
}

// CMC2To1 returns CMC with l=2, c=1.
func CMC2To1(c1, c2 model.Triplet) float64 {
	return CMC(c1, c2, CMC2To1Params)
}
