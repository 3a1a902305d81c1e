package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/deltae/model"
)

// ErrInvalidArgument is the kind shared by all argument errors in deltae.
var ErrInvalidArgument = model.ErrInvalidArgument

// ErrInvalidMetric indicates a metric identifier outside the defined set.
type ErrInvalidMetric struct {
	Metric Metric
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %v", e.Metric)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ErrInvalidMetric) Is(target error) bool { return target == ErrInvalidArgument }

// Metric identifies a color-difference formula.
type Metric int

const (
	MetricCIE76 Metric = iota
	MetricCIE94GraphicArts
	MetricCIE94Textiles
	MetricCIE2000
	MetricCMC1To1
	MetricCMC2To1
	MetricRGB
	MetricRGBL
)

var metricNames = [...]string{
	MetricCIE76:            "CIE76",
	MetricCIE94GraphicArts: "CIE94_GRAPHIC_ARTS",
	MetricCIE94Textiles:    "CIE94_TEXTILES",
	MetricCIE2000:          "CIE2000",
	MetricCMC1To1:          "CMC_1TO1",
	MetricCMC2To1:          "CMC_2TO1",
	MetricRGB:              "RGB",
	MetricRGBL:             "RGBL",
}

// NumMetrics is the number of defined metric identifiers.
const NumMetrics = len(metricNames)

// Valid reports whether m is one of the defined identifiers.
func (m Metric) Valid() bool {
	return m >= 0 && int(m) < NumMetrics
}

func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
	return metricNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &ErrInvalidMetric{Metric: m}
	}
	return []byte(metricNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMetric returns the metric with the given name.
// Matching is case-insensitive; "-" is treated as "_" and CIEDE2000 is
// accepted as an alias of CIE2000.
func ParseMetric(s string) (Metric, error) {
	name := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	if name == "CIEDE2000" {
		return MetricCIE2000, nil
	}
	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown metric name %q", ErrInvalidArgument, s)
}

// Metrics returns all defined identifiers in declaration order.
func Metrics() []Metric {
	ms := make([]Metric, NumMetrics)
	for i := range ms {
		ms[i] = Metric(i)
	}
	return ms
}

// Func is a pairwise color-difference formula.
// The first argument is the sample, the second the reference; most formulas
// are not symmetric.
type Func func(c1, c2 model.Triplet) float64

// RGB and RGBL reuse the Euclidean formula.
var providers = [...]Func{
	MetricCIE76:            CIE76,
	MetricCIE94GraphicArts: CIE94GraphicArts,
	MetricCIE94Textiles:    CIE94Textiles,
	MetricCIE2000:          CIEDE2000,
	MetricCMC1To1:          CMC1To1,
	MetricCMC2To1:          CMC2To1,
	MetricRGB:              CIE76,
	MetricRGBL:             CIE76,
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	if !m.Valid() {
		return nil, &ErrInvalidMetric{Metric: m}
	}
	return providers[m], nil
}
