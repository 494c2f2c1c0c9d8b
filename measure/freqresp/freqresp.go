package freqresp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
)

// DefaultFFTSize is used when Config.FFTSize is zero.
const DefaultFFTSize = 4096

var (
	ErrInvalidSampleRate = errors.New("freqresp: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("freqresp: FFT size must be a power of two >= 2")
)

// ImpulseResponder is anything that can report its first n impulse-response
// samples without disturbing its running state. *biquad.Filter implements it.
type ImpulseResponder interface {
	ImpulseResponse(n int) []float64
}

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	FFTSize    int // impulse-response length and transform size; 0 selects DefaultFFTSize
}

// Response is a measured one-sided frequency response.
type Response struct {
	Frequencies []float64 // bin centre in Hz, 0..SampleRate/2
	MagnitudeDB []float64 // 20*log10|H|
	Phase       []float64 // radians, [-pi, pi]
}

// Measure captures cfg.FFTSize impulse-response samples from src and returns
// the response at the FFTSize/2+1 non-negative frequency bins.
func Measure(src ImpulseResponder, cfg Config) (Response, error) {
	if !(cfg.SampleRate > 0) {
		return Response{}, ErrInvalidSampleRate
	}

	n := cfg.FFTSize
	if n == 0 {
		n = DefaultFFTSize
	}

	if n < 2 || n&(n-1) != 0 {
		return Response{}, fmt.Errorf("%w: got %d", ErrInvalidFFTSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Response{}, fmt.Errorf("freqresp: failed to create FFT plan: %w", err)
	}

	ir := src.ImpulseResponse(n)

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return Response{}, fmt.Errorf("freqresp: forward FFT: %w", err)
	}

	bins := n/2 + 1
	resp := Response{
		Frequencies: make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
		Phase:       make([]float64, bins),
	}

	for k := range bins {
		resp.Frequencies[k] = float64(k) * cfg.SampleRate / float64(n)
		resp.MagnitudeDB[k] = 20 * math.Log10(cmplx.Abs(out[k]))
		resp.Phase[k] = cmplx.Phase(out[k])
	}

	return resp, nil
}

// MaxDeviationDB returns the largest absolute difference between the measured
// magnitude and want, evaluated at each bin frequency. Bins where want is not
// finite (exact zeros of the transfer function) are skipped. A non-finite
// measurement elsewhere yields +Inf.
func MaxDeviationDB(measured Response, want func(freqHz float64) float64) float64 {
	dev := make([]float64, 0, len(measured.MagnitudeDB))

	for k, got := range measured.MagnitudeDB {
		ref := want(measured.Frequencies[k])
		if math.IsNaN(ref) || math.IsInf(ref, 0) {
			continue
		}

		d := math.Abs(got - ref)
		if math.IsNaN(d) {
			d = math.Inf(1)
		}

		dev = append(dev, d)
	}

	if len(dev) == 0 {
		return 0
	}

	return floats.Max(dev)
}

// PeakFrequency returns the frequency of the bin with the largest magnitude.
// It returns 0 for an empty response.
func (r Response) PeakFrequency() float64 {
	if len(r.MagnitudeDB) == 0 {
		return 0
	}

	return r.Frequencies[floats.MaxIdx(r.MagnitudeDB)]
}
