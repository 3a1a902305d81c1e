// Package distance provides perceptual color-difference formulas.
//
// All formulas are pure functions of two triplets and are safe for
// concurrent use. The first argument is the measured sample, the second the
// reference. CIE94 and CMC weight the difference by the first sample's
// chroma, lightness and hue, so swapping the arguments can change the result.
//
// # Supported Metrics
//
//   - MetricCIE76: Euclidean distance in Lab
//   - MetricCIE94GraphicArts: CIE94 with kL=1, K1=0.045, K2=0.015
//   - MetricCIE94Textiles: CIE94 with kL=2, K1=0.048, K2=0.014
//   - MetricCIE2000: CIEDE2000 with unit weights
//   - MetricCMC1To1: CMC l:c with l=1, c=1
//   - MetricCMC2To1: CMC l:c with l=2, c=1
//   - MetricRGB, MetricRGBL: Euclidean distance on (linear) RGB
//
// # Usage
//
//	d := distance.CIEDE2000(sample, reference)
//
//	fn, err := distance.Provider(distance.MetricCMC2To1)
//	if err != nil {
//	    return err
//	}
//	d = fn(sample, reference)
//
// The general forms CIE94, CIEDE2000WithParams and CMC accept explicit
// weighting parameters.
package distance
