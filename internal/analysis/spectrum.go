package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Peak is one bin of a power spectrum.
type Peak struct {
	Bin    int
	Period float64 // frames per cycle
	Power  float64
}

// PowerSpectrum returns the magnitude of the first len(data)/2 frequency
// bins after removing the mean, so bin 0 only holds leftover drift.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeak is the strongest non-zero bin. ok is false for flat or
// too-short input.
func DominantPeak(data []float64) (Peak, bool) {
	ps := PowerSpectrum(data)
	best := Peak{}
	for k := 1; k < len(ps); k++ {
		if ps[k] > best.Power {
			best = Peak{Bin: k, Period: float64(len(data)) / float64(k), Power: ps[k]}
		}
	}
	const eps = 1e-9
	return best, best.Power > eps
}

// DominantPeriod is the period, in frames, of the strongest cycle.
func DominantPeriod(data []float64) (float64, bool) {
	p, ok := DominantPeak(data)
	return p.Period, ok
}
