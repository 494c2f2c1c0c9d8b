package freqresp_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/measure/freqresp"
)

func ExampleMeasure() {
	c := biquad.Coefficients{
		A1: -0.2, A2: 0.04,
		B0: 0.25, B1: 0.5, B2: 0.25,
	}

	resp, err := freqresp.Measure(biquad.NewFilter(c), freqresp.Config{SampleRate: 48000, FFTSize: 1024})
	if err != nil {
		panic(err)
	}

	dev := freqresp.MaxDeviationDB(resp, func(hz float64) float64 {
		return c.MagnitudeDB(hz, 48000)
	})

	fmt.Printf("bins: %d\n", len(resp.MagnitudeDB))
	fmt.Printf("DC: %+.2f dB\n", resp.MagnitudeDB[0])
	fmt.Printf("matches closed form: %v\n", dev < 1e-3)
	// Output:
	// bins: 513
	// DC: +1.51 dB
	// matches closed form: true
}
