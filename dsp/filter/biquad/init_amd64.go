//go:build amd64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/amd64/unroll4" // register 4x-unrolled backend
	_ "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/generic"       // register generic backend
	_ "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"      // initialize backend registry
)
