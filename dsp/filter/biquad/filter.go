package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Filter is a single Direct Form II Transposed biquad with its own
// coefficients and delay-line state.
type Filter struct {
	coeffs Coefficients

	s1, s2 float64
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewFilter returns a Filter using a copy of c, with both state registers
// set to zero.
func NewFilter(c Coefficients) *Filter {
	return &Filter{coeffs: c}
}

// Coefficients returns the coefficient set the filter was built with.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	c := &f.coeffs

	y := f.s1 + c.B0*x
	// s1' reads the old s2, so both are staged before either is stored.
	s1 := f.s2 + c.B1*x - c.A1*y
	s2 := c.B2*x - c.A2*y
	f.s1, f.s2 = s1, s2

	return y
}

// ProcessBlock filters buf in place, first element to last, continuing from
// the current state. Zero-alloc. An empty buf is a no-op.
func (f *Filter) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		A1: f.coeffs.A1,
		A2: f.coeffs.A2,
		B0: f.coeffs.B0,
		B1: f.coeffs.B1,
		B2: f.coeffs.B2,
	}

	f.s1, f.s2 = processBlockImpl(coeffs, f.s1, f.s2, buf)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// processBlockScalar is the plain per-sample loop, kept as the reference the
// registered kernels are checked and benchmarked against.
func (f *Filter) processBlockScalar(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	f.s1 = 0
	f.s2 = 0
}

// State returns the current delay-line state [s1, s2].
func (f *Filter) State() [2]float64 {
	return [2]float64{f.s1, f.s2}
}
