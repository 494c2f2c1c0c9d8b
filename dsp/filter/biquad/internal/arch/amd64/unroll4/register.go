//go:build amd64 && !purego

// Package unroll4 registers a 4x-unrolled scalar kernel for AVX2-class
// amd64 CPUs, where the wider out-of-order window benefits from the longer
// straight-line body. It uses no vector instructions.
package unroll4

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unroll4",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, s1, s2 float64, buf []float64) (newS1, newS2 float64) {
	a1, a2 := c.A1, c.A2
	b0, b1, b2 := c.B0, c.B1, c.B2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0 := buf[i]
		y0 := s1 + b0*x0
		s1n0 := s2 + b1*x0 - a1*y0
		s2n0 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := s1n0 + b0*x1
		s1n1 := s2n0 + b1*x1 - a1*y1
		s2n1 := b2*x1 - a2*y1

		x2 := buf[i+2]
		y2 := s1n1 + b0*x2
		s1n2 := s2n1 + b1*x2 - a1*y2
		s2n2 := b2*x2 - a2*y2

		x3 := buf[i+3]
		y3 := s1n2 + b0*x3
		s1 = s2n2 + b1*x3 - a1*y3
		s2 = b2*x3 - a2*y3

		buf[i] = y0
		buf[i+1] = y1
		buf[i+2] = y2
		buf[i+3] = y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := s1 + b0*x
		s1, s2 = s2+b1*x-a1*y, b2*x-a2*y
		buf[i] = y
	}

	return s1, s2
}
