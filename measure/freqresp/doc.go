// Package freqresp measures the frequency response of a linear processor
// from its impulse response.
//
// The impulse response is captured with the processor's own state left
// untouched, zero-padded to the FFT size and transformed with algo-fft.
// The result covers bins 0..N/2 and can be compared against a closed-form
// curve such as [biquad.Coefficients.MagnitudeDB]:
//
//	f := biquad.NewFilter(c)
//	resp, err := freqresp.Measure(f, freqresp.Config{SampleRate: 48000})
//	dev := freqresp.MaxDeviationDB(resp, func(hz float64) float64 {
//		return c.MagnitudeDB(hz, 48000)
//	})
//
// [biquad.Coefficients.MagnitudeDB]: github.com/cwbudde/algo-biquad/dsp/filter/biquad
package freqresp
