package distance

import (
	"math"

	"github.com/hupe1980/deltae/model"
)

// CIE76 returns the Euclidean distance between c1 and c2.
// It is symmetric and also serves the RGB and RGBL metrics.
func CIE76(c1, c2 model.Triplet) float64 {
	d0 := c1[0] - c2[0]
	d1 := c1[1] - c2[1]
	d2 := c1[2] - c2[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}
