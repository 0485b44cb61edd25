package analyzer

import "math"

// GetSpectrum reads out[i] = amp[idx[i]] * envelope[idx[i]] for a channel's
// smoothed magnitude table, compensating the noise floor at the bin the
// magnitude was actually read from. Returns false for an out-of-range
// channel.
func (a *Analyzer) GetSpectrum(channel int, out []float64, idx []int) bool {
	if channel < 0 || channel >= len(a.channels) {
		return false
	}

	amp := a.channels[channel].amp

	for i, j := range idx {
		out[i] = amp[j] * a.envelopeTbl[j]
	}

	return true
}

// GetLevel is the single-bin variant of GetSpectrum. Returns 0 for an
// out-of-range channel.
func (a *Analyzer) GetLevel(channel, bin int) float64 {
	if channel < 0 || channel >= len(a.channels) {
		return 0
	}

	return a.channels[channel].amp[bin] * a.envelopeTbl[bin]
}

// ReadFrequencies fills out with a count-point grid from start to stop
// (inclusive of both ends) in the given scale. Returns false for count ==
// 0 or an unrecognized scale.
func (a *Analyzer) ReadFrequencies(out []float64, start, stop float64, count int, scale FreqScale) bool {
	if count == 0 {
		return false
	}
	if count == 1 {
		out[0] = start

		return true
	}

	n := count - 1

	switch scale {
	case FreqScaleLogarithmic:
		norm := math.Log(stop/start) / float64(n)
		for i := 0; i < n; i++ {
			out[i] = start * math.Exp(float64(i)*norm)
		}
	case FreqScaleLinear:
		norm := (stop - start) / float64(n)
		for i := 0; i < n; i++ {
			out[i] = start + float64(i)*norm
		}
	default:
		return false
	}

	out[n] = stop

	return true
}

// GetFrequencies fills freq with a count-point logarithmic grid from start
// to stop and idx with the FFT bin each frequency maps to at the
// analyzer's current rank and sample rate, clamped to fftSize/2 + 1 (one
// past the Nyquist bin).
func (a *Analyzer) GetFrequencies(freq []float64, idx []int, start, stop float64, count int) {
	fftSize := 1 << uint(a.rank)
	fftCsize := fftSize/2 + 1
	scale := float64(fftSize) / float64(a.sampleRate)

	norm := math.Log(stop/start) / float64(count-1)

	for i := 0; i < count; i++ {
		f := start * math.Exp(float64(i)*norm)

		bin := int(scale * f)
		if bin > fftCsize {
			bin = fftCsize
		}

		freq[i] = f
		idx[i] = bin
	}
}
