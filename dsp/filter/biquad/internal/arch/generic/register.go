// Package generic registers the portable block kernel used on every
// architecture and whenever ForceGeneric is set.
package generic

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: ProcessBlock,
	})
}

// ProcessBlock is a 2x-unrolled scalar DF2T kernel. Each step evaluates the
// same expressions as biquad.Filter.ProcessSample.
func ProcessBlock(c registry.Coefficients, s1, s2 float64, buf []float64) (newS1, newS2 float64) {
	a1, a2 := c.A1, c.A2
	b0, b1, b2 := c.B0, c.B1, c.B2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := s1 + b0*x0
		s1n := s2 + b1*x0 - a1*y0
		s2n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := s1n + b0*x1
		s1 = s2n + b1*x1 - a1*y1
		s2 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := s1 + b0*x
		s1, s2 = s2+b1*x-a1*y, b2*x-a2*y
		buf[i] = y
	}

	return s1, s2
}
