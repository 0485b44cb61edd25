package scope

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/design"
	"github.com/cwbudde/algo-rtdsp/dsp/oversample"
	"github.com/cwbudde/algo-rtdsp/dsp/trigger"
)

// acCouplingCutoffHz and acCouplingOrder set the AC-coupling highpass:
// a low corner that blocks DC offset and subsonic drift without touching
// the signal band.
const acCouplingCutoffHz = 10.0
const acCouplingOrder = 2

// humRejectQ sets the width of the mains-hum notch; narrow enough to
// leave neighboring content alone.
const humRejectQ = 10.0

// Coupling selects whether the captured input reaches the trigger and
// capture ring unmodified (DC) or through a highpass that blocks DC
// offset and subsonic drift first (AC).
type Coupling int

const (
	CouplingDC Coupling = iota
	CouplingAC
)

// String returns a human-readable name for the coupling mode.
func (c Coupling) String() string {
	switch c {
	case CouplingDC:
		return "DC"
	case CouplingAC:
		return "AC"
	default:
		return "Unknown"
	}
}

// CaptureSize and SweepSize are fixed buffer lengths: a multiple of 3, 4,
// 6, and 8 so every supported oversampling factor divides it evenly.
const (
	CaptureSize = 196608
	SweepSize   = 196608
)

// OutputMode selects what process writes to dst, independent of capture
// state.
type OutputMode int

const (
	OutputMuted OutputMode = iota
	OutputCopy
)

// String returns a human-readable name for the output mode.
func (m OutputMode) String() string {
	switch m {
	case OutputMuted:
		return "Muted"
	case OutputCopy:
		return "Copy"
	default:
		return "Unknown"
	}
}

// State is the oscilloscope's run state.
type State int

const (
	Acquiring State = iota
	Sweeping
)

// String returns a human-readable name for the run state.
func (s State) String() string {
	switch s {
	case Acquiring:
		return "Acquiring"
	case Sweeping:
		return "Sweeping"
	default:
		return "Unknown"
	}
}

// Oscilloscope is a triggered capture engine: it oversamples its input into
// a circular ring, watches the oversampled stream for a trigger edge, and
// on a fire splices the pre- and post-trigger history into a linear sweep.
type Oscilloscope struct {
	sampleRate     float64
	overSampleRate float64
	oversampling   int
	overMode       oversample.Mode
	triggerType    trigger.Type
	outputMode     OutputMode
	state          State
	sync           bool

	over oversample.Upsampler
	trig *trigger.Detector

	captureBuf []float64
	sweepBuf   []float64

	bufHead   int
	triggerAt int

	preTriggerSeconds  float64
	postTriggerSeconds float64
	preTrigger         int
	postTrigger        int
	limit              int

	sweepHead     int
	sweepComplete bool

	coupling          Coupling
	couplingPrototype design.Prototype
	humRejectEnabled  bool
	humRejectHz       float64

	couplingChain *biquad.Chain
	humChain      *biquad.Chain
	humCoeffs     biquad.Coefficients
	filterScratch []float64
}

// New returns an oscilloscope with a pending sync; call Init then
// UpdateSettings (via Process) before use.
func New() *Oscilloscope {
	return &Oscilloscope{
		trig:       trigger.NewDetector(),
		outputMode: OutputMuted,
		sync:       true,
	}
}

// Init allocates the capture and sweep buffers.
func (o *Oscilloscope) Init() error {
	o.captureBuf = make([]float64, CaptureSize)
	o.sweepBuf = make([]float64, SweepSize)
	o.filterScratch = make([]float64, CaptureSize)

	return nil
}

// Destroy releases the capture and sweep buffers.
func (o *Oscilloscope) Destroy() {
	o.captureBuf = nil
	o.sweepBuf = nil
	o.filterScratch = nil
}

// SetSampleRate stages a new host sample rate, applied on the next
// UpdateSettings.
func (o *Oscilloscope) SetSampleRate(sr float64) {
	if o.sampleRate == sr {
		return
	}

	o.sampleRate = sr
	o.sync = true
}

// SetOversamplingMode stages a new oversampling mode, applied on the next
// UpdateSettings.
func (o *Oscilloscope) SetOversamplingMode(m oversample.Mode) {
	if o.overMode == m {
		return
	}

	o.overMode = m
	o.sync = true
}

// SetTriggerType stages a new trigger kind, applied on the next
// UpdateSettings.
func (o *Oscilloscope) SetTriggerType(t trigger.Type) {
	if o.triggerType == t {
		return
	}

	o.triggerType = t
	o.sync = true
}

// SetOutputMode sets the output mode. Unlike the other setters this takes
// effect immediately: it is read directly by Process, not gated behind
// UpdateSettings.
func (o *Oscilloscope) SetOutputMode(m OutputMode) {
	o.outputMode = m
}

// SetCoupling stages the input coupling mode, applied on the next
// UpdateSettings.
func (o *Oscilloscope) SetCoupling(c Coupling) {
	if o.coupling == c {
		return
	}

	o.coupling = c
	o.sync = true
}

// SetCouplingPrototype stages the filter family used for AC coupling,
// applied on the next UpdateSettings. Defaults to design.Butterworth.
func (o *Oscilloscope) SetCouplingPrototype(p design.Prototype) {
	if o.couplingPrototype == p {
		return
	}

	o.couplingPrototype = p
	o.sync = true
}

// SetHumReject stages a mains-hum notch centered at freqHz (typically 50
// or 60), applied on the next UpdateSettings. Passing enabled=false
// disables the notch.
func (o *Oscilloscope) SetHumReject(enabled bool, freqHz float64) {
	if o.humRejectEnabled == enabled && o.humRejectHz == freqHz {
		return
	}

	o.humRejectEnabled = enabled
	o.humRejectHz = freqHz
	o.sync = true
}

// SetPreTrigger stages a pre-trigger capture length in seconds, applied on
// the next UpdateSettings.
func (o *Oscilloscope) SetPreTrigger(seconds float64) {
	o.preTriggerSeconds = seconds
	o.sync = true
}

// SetPostTrigger stages a post-trigger capture length in seconds, applied
// on the next UpdateSettings.
func (o *Oscilloscope) SetPostTrigger(seconds float64) {
	o.postTriggerSeconds = seconds
	o.sync = true
}

// State returns the current run state.
func (o *Oscilloscope) State() State {
	return o.state
}

// SweepComplete reports whether the most recent sweep finished.
func (o *Oscilloscope) SweepComplete() bool {
	return o.sweepComplete
}

// Sweep returns the completed sweep buffer, valid only after
// SweepComplete returns true and before the next trigger fires.
func (o *Oscilloscope) Sweep() []float64 {
	return o.sweepBuf[:o.limit]
}

// PreTriggerSamples returns the currently active pre-trigger length in
// samples at the oversampled rate.
func (o *Oscilloscope) PreTriggerSamples() int {
	return o.preTrigger
}

// PostTriggerSamples returns the currently active post-trigger length in
// samples at the oversampled rate.
func (o *Oscilloscope) PostTriggerSamples() int {
	return o.postTrigger
}

// UpdateSettings applies staged settings. A no-op unless a setter has run
// since the last call.
func (o *Oscilloscope) UpdateSettings() {
	if !o.sync {
		return
	}

	o.over.SetSampleRate(o.sampleRate)
	o.over.SetMode(o.overMode)

	if o.over.Modified() {
		o.over.UpdateSettings()
	}

	o.oversampling = o.over.Oversampling()
	o.overSampleRate = float64(o.oversampling) * o.sampleRate

	minBufSize := CaptureSize
	if SweepSize < minBufSize {
		minBufSize = SweepSize
	}

	o.preTrigger = secondsToSamples(o.overSampleRate, o.preTriggerSeconds)
	if o.preTrigger > minBufSize {
		o.preTrigger = minBufSize
	}

	o.preTriggerSeconds = samplesToSeconds(o.overSampleRate, o.preTrigger)

	availableForPost := SweepSize - o.preTrigger

	o.postTrigger = secondsToSamples(o.overSampleRate, o.postTriggerSeconds)
	if o.postTrigger > availableForPost {
		o.postTrigger = availableForPost
	}

	o.postTriggerSeconds = samplesToSeconds(o.overSampleRate, o.postTrigger)

	o.limit = o.preTrigger + o.postTrigger
	o.sweepHead = 0
	o.sweepComplete = false

	o.bufHead = 0
	o.triggerAt = 0

	o.trig.SetPostTriggerSamples(o.postTrigger)
	o.trig.SetTriggerType(o.triggerType)
	o.trig.UpdateSettings()

	o.couplingChain = nil
	if o.coupling == CouplingAC {
		coeffs := o.couplingPrototype.HP(acCouplingCutoffHz, acCouplingOrder, o.overSampleRate)
		if len(coeffs) > 0 {
			o.couplingChain = biquad.NewChain(coeffs)
		}
	}

	o.humChain = nil
	if o.humRejectEnabled && o.humRejectHz > 0 {
		o.humCoeffs = design.Notch(o.humRejectHz, humRejectQ, o.overSampleRate)
		o.humChain = biquad.NewChain([]biquad.Coefficients{o.humCoeffs})
	}

	o.sync = false
}

// filterInput copies count samples from src into the scratch buffer and
// runs the active coupling and hum-reject filters over it in place,
// returning the scratch slice in place of src when either is active.
func (o *Oscilloscope) filterInput(src []float64, count int) []float64 {
	if o.couplingChain == nil && o.humChain == nil {
		return src[:count]
	}

	dst := o.filterScratch[:count]
	copy(dst, src[:count])

	if o.couplingChain != nil {
		o.couplingChain.ProcessBlock(dst)
	}
	if o.humChain != nil {
		o.humChain.ProcessBlock(dst)
	}

	return dst
}

func secondsToSamples(rate, seconds float64) int {
	return int(math.Round(rate * seconds))
}

func samplesToSeconds(rate float64, samples int) float64 {
	if rate == 0 {
		return 0
	}

	return float64(samples) / rate
}
