package biquad

// Coefficients holds the transfer function coefficients of one biquad
// section. a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// The value is treated as immutable; a Filter keeps its own copy.
type Coefficients struct {
	A1, A2     float64 // feedback (denominator)
	B0, B1, B2 float64 // feedforward (numerator)
}

// NewCoefficients returns a coefficient set holding the given values unchanged.
// No range or stability checks are made.
func NewCoefficients(a1, a2, b0, b1, b2 float64) Coefficients {
	return Coefficients{A1: a1, A2: a2, B0: b0, B1: b1, B2: b2}
}

// Identity returns pass-through coefficients (B0 = 1, all others 0).
func Identity() Coefficients {
	return Coefficients{B0: 1}
}
