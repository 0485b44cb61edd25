package scope

import (
	"github.com/cwbudde/algo-rtdsp/dsp/dump"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

// Dump writes the oscilloscope's configuration and capture state to d,
// for diagnostics.
func (o *Oscilloscope) Dump(d dump.Dumper) {
	d.Write("sampleRate", o.sampleRate)
	d.Write("overSampleRate", o.overSampleRate)
	d.Write("oversampling", o.oversampling)
	d.Write("triggerType", o.triggerType)
	d.Write("outputMode", o.outputMode)
	d.Write("state", o.state)
	d.Write("preTrigger", o.preTrigger)
	d.Write("postTrigger", o.postTrigger)
	d.Write("limit", o.limit)
	d.Write("bufHead", o.bufHead)
	d.Write("triggerAt", o.triggerAt)
	d.Write("sweepHead", o.sweepHead)
	d.Write("sweepComplete", o.sweepComplete)

	d.Write("coupling", o.coupling)
	d.Write("couplingPrototype", o.couplingPrototype)
	d.Write("humRejectEnabled", o.humRejectEnabled)
	d.Write("humRejectHz", o.humRejectHz)

	if o.couplingChain != nil {
		d.Write("couplingOrder", o.couplingChain.Order())
		d.Write("couplingMagnitudeDBAtCutoff", o.couplingChain.MagnitudeDB(acCouplingCutoffHz, o.overSampleRate))
	}

	if o.humChain != nil {
		pz := biquad.PoleZeroPairs([]biquad.Coefficients{o.humCoeffs})[0]

		d.BeginObject()
		d.Write("poles", pz.Poles)
		d.Write("zeros", pz.Zeros)
		d.EndObject()
	}
}
