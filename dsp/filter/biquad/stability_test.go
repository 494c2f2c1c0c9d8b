package biquad

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoefficientsPolesZeros_SecondOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)
	z1 := complex(0.31, 0.44)
	z2 := cmplx.Conj(z1)

	b0 := 2.3
	c := Coefficients{
		B0: b0,
		B1: -b0 * real(z1+z2),
		B2: b0 * real(z1*z2),
		A1: -real(p1 + p2),
		A2: real(p1 * p2),
	}

	if poles := c.Poles(); !unorderedRootsClose(poles, p1, p2, 1e-12) {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", poles, p1, p2)
	}
	if zeros := c.Zeros(); !unorderedRootsClose(zeros, z1, z2, 1e-12) {
		t.Fatalf("unexpected zeros: got=%v want={%v,%v}", zeros, z1, z2)
	}
}

func TestCoefficientsPolesZeros_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 1.0, B1: -0.3, A1: -0.8}

	if poles := c.Poles(); !unorderedRootsClose(poles, complex(0.8, 0), 0, 1e-12) {
		t.Fatalf("unexpected first-order poles: %v", poles)
	}
	if zeros := c.Zeros(); !unorderedRootsClose(zeros, complex(0.3, 0), 0, 1e-12) {
		t.Fatalf("unexpected first-order zeros: %v", zeros)
	}
}

func TestCoefficientsZeros_AllZero(t *testing.T) {
	c := Coefficients{A1: 0.5}
	assert.Equal(t, [2]complex128{}, c.Zeros())
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name   string
		coeffs Coefficients
		want   bool
	}{
		{"identity", Identity(), true},
		{"scenario", scenarioCoeffs(), true},
		{"lowpass-like", lowpassLike(), true},
		{"pole at 1", Coefficients{B0: 1, A1: -1}, false},
		{"pole at -1.5", Coefficients{B0: 1, A1: 1.5}, false},
		{"complex poles radius 1.1", Coefficients{B0: 1, A1: 0, A2: 1.21}, false},
		{"complex poles on unit circle", Coefficients{B0: 1, A1: 0, A2: 1}, false},
		{"nan feedback", Coefficients{B0: 1, A1: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coeffs.IsStable())
		})
	}
}

func TestUnstableCoefficientsDiverge(t *testing.T) {
	// Unstable sets are processed as-is; the state grows without bound.
	c := Coefficients{B0: 1, A1: -2}
	assert.False(t, c.IsStable())

	f := NewFilter(c)
	f.ProcessSample(1)
	for range 2000 {
		f.ProcessSample(0)
	}

	st := f.State()
	assert.True(t, math.IsInf(st[0], 0) || math.IsNaN(st[0]), "s1 = %v", st[0])
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}
