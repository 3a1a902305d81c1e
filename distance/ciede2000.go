package distance

import (
	"math"

	"github.com/hupe1980/deltae/model"
)

// CIEDE2000Params holds the CIEDE2000 parametric weighting factors.
type CIEDE2000Params struct {
	KL float64
	KC float64
	KH float64
}

// DefaultCIEDE2000Params sets all weighting factors to unity.
var DefaultCIEDE2000Params = CIEDE2000Params{KL: 1, KC: 1, KH: 1}

// pow25To7 is 25^7.
const pow25To7 = 6103515625.0

// Hue-dependent constants of the T and RT terms.
var (
	rad6   = radians(6)
	rad30  = radians(30)
	rad60  = radians(60)
	rad63  = radians(63)
	rad25  = radians(25)
	rad275 = radians(275)
)

// CIEDE2000 returns the CIEDE2000 difference of c1 against c2 with unit
// weighting factors.
func CIEDE2000(c1, c2 model.Triplet) float64 {
	return CIEDE2000WithParams(c1, c2, DefaultCIEDE2000Params)
}

// CIEDE2000WithParams returns the CIEDE2000 difference of c1 against c2.
//
// G is derived from the mean of the raw chromas and is reused for the
// rotation term RT. A zero adjusted chroma yields a hue angle of 0.
func CIEDE2000WithParams(c1, c2 model.Triplet, p CIEDE2000Params) float64 {
	deltaL := c2[0] - c1[0]
	lBar := (c1[0] + c2[0]) / 2

	chroma1 := hypot(c1[1], c1[2])
	chroma2 := hypot(c2[1], c2[2])
	cBar := (chroma1 + chroma2) / 2
	cBar7 := math.Pow(cBar, 7)
	g := math.Sqrt(cBar7 / (cBar7 + pow25To7))

	a1 := c1[1] + c1[1]/2*(1-g)
	a2 := c2[1] + c2[1]/2*(1-g)
	chroma1p := hypot(a1, c1[2])
	chroma2p := hypot(a2, c2[2])
	cBarP := (chroma1p + chroma2p) / 2
	deltaC := chroma2p - chroma1p

	h1 := hueAngle(c1[2], a1, chroma1p)
	h2 := hueAngle(c2[2], a2, chroma2p)

	var deltah float64
	switch {
	case math.Abs(h2-h1) <= math.Pi:
		deltah = h2 - h1
	case h2 <= h1:
		deltah = h2 - h1 + twoPi
	default:
		deltah = h2 - h1 - twoPi
	}

	var hBar float64
	switch {
	case chroma1p == 0 || chroma2p == 0:
		hBar = h1 + h2
	case math.Abs(h1-h2) <= math.Pi:
		hBar = (h1 + h2) / 2
	case h1+h2 < twoPi:
		hBar = (h1 + h2 + twoPi) / 2
	default:
		hBar = (h1 + h2 - twoPi) / 2
	}

	deltaH := 2 * math.Sqrt(chroma1p*chroma2p) * math.Sin(deltah/2)

	t := 1 - 0.17*math.Cos(hBar-rad30) +
		0.24*math.Cos(2*hBar) +
		0.32*math.Cos(3*hBar+rad6) -
		0.2*math.Cos(4*hBar-rad63)

	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t
	l50 := sq(lBar - 50)
	sL := 1 + 0.015*l50/math.Sqrt(20+l50)
	rt := -2 * g * math.Sin(rad60*math.Exp(-sq((hBar-rad275)/rad25)))

	termL := deltaL / (p.KL * sL)
	termC := deltaC / (p.KC * sC)
	termH := deltaH / (p.KH * sH)

	res := termL*termL + termC*termC + termH*termH + rt*termC*termH
	if res > 0 {
		return math.Sqrt(res)
	}
	return 0
}
