package analyzer

import "github.com/cwbudde/algo-rtdsp/dsp/dump"

// Dump writes the analyzer's configuration and per-channel scheduling
// state to d, for diagnostics.
func (a *Analyzer) Dump(d dump.Dumper) {
	d.Write("rank", a.rank)
	d.Write("maxRank", a.maxRank)
	d.Write("sampleRate", a.sampleRate)
	d.Write("rate", a.rate)
	d.Write("fftPeriod", a.fftPeriod)
	d.Write("tau", a.tau)
	d.Write("reactivity", a.reactivity)
	d.Write("shift", a.shift)
	d.Write("windowType", a.windowType)
	d.Write("envelopeType", a.envelopeType)
	d.Write("active", a.active)

	d.BeginArray("channels", len(a.channels))
	for i := range a.channels {
		c := &a.channels[i]

		d.BeginObject()
		d.Write("head", c.head)
		d.Write("delay", c.delay)
		d.Write("counter", c.counter)
		d.Write("freeze", c.freeze)
		d.Write("active", c.active)
		d.EndObject()
	}
	d.EndArray()
}
