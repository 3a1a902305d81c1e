package deltae

import (
	"fmt"
	"math"

	"github.com/hupe1980/deltae/model"
)

// Summary reduces a distance batch to the usual aggregate figures.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	RMS   float64 `json:"rms"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Summarize computes count, mean, root mean square, min and max over s.
// An empty collection yields the zero Summary. A NaN cell propagates into
// every figure.
func Summarize(s model.Scalars) Summary {
	if len(s.Data) == 0 {
		return Summary{}
	}

	sum := Summary{
		Count: len(s.Data),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	var total, squares float64
	for _, v := range s.Data {
		total += v
		squares += v * v
		sum.Min = math.Min(sum.Min, v)
		sum.Max = math.Max(sum.Max, v)
	}
	n := float64(sum.Count)
	sum.Mean = total / n
	sum.RMS = math.Sqrt(squares / n)
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("count=%d mean=%.4f rms=%.4f min=%.4f max=%.4f", s.Count, s.Mean, s.RMS, s.Min, s.Max)
}
