package oversample

import "github.com/cwbudde/algo-rtdsp/dsp/dump"

// Dump writes the upsampler's configuration and anti-alias filter response
// to d, for diagnostics.
func (u *Upsampler) Dump(d dump.Dumper) {
	d.Write("sampleRate", u.sampleRate)
	d.Write("mode", u.mode)
	d.Write("prototype", u.prototype)
	d.Write("factor", u.factor)
	d.Write("cutoffHz", u.cutoff)

	if u.chain == nil {
		return
	}

	oversampledRate := u.OversampledRate()

	d.Write("order", u.chain.Order())
	d.Write("magnitudeDBAtCutoff", u.chain.MagnitudeDB(u.cutoff, oversampledRate))
	d.Write("magnitudeDBAtNyquist", u.chain.MagnitudeDB(oversampledRate/2, oversampledRate))

	firstSection := u.chain.Section(0)
	d.Write("firstSectionMagnitudeDB", firstSection.MagnitudeDB(u.cutoff, oversampledRate))
	d.Write("firstSectionPhaseRad", firstSection.Phase(u.cutoff, oversampledRate))

	impulse := u.chain.ImpulseResponse(32)
	peak := 0.0
	for _, v := range impulse {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	d.Write("impulsePeak", peak)

	pairs := u.chain.PoleZeroPairs()
	d.BeginArray("sections", len(pairs))
	for i := range pairs {
		d.BeginObject()
		d.Write("poles", pairs[i].Poles)
		d.Write("zeros", pairs[i].Zeros)
		d.EndObject()
	}
	d.EndArray()
}
