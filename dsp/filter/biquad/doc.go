// Package biquad provides a single second-order IIR filter section (biquad)
// in Direct Form II Transposed topology.
//
// A [Filter] owns one set of [Coefficients] and two delay-line registers,
// s1 and s2, both zero at construction. Every sample runs the recurrence
//
//	y   = s1 + B0*x
//	s1' = s2 + B1*x - A1*y
//	s2' = B2*x - A2*y
//
// [Filter.ProcessSample] filters one value, [Filter.ProcessBlock] filters a
// buffer in place. State carries over between calls until [Filter.Reset].
//
// Coefficients are not validated. Feedback terms that place a pole on or
// outside the unit circle make the registers diverge toward Inf or NaN; use
// [Coefficients.IsStable] before processing when the source of the
// coefficients is untrusted.
//
// A Filter is not safe for concurrent use. Independent filters share no
// state and may run on separate goroutines.
package biquad
