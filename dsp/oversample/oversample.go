package oversample

import (
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/design"
)

// Mode selects the oversampling factor. The factor set follows the
// collaborator's own enum (None, 2x, 3x, 4x, 6x, 8x); no original_source
// is included for this collaborator, so this list is a documented,
// supplementable choice rather than a literal port — see DESIGN.md.
type Mode int

const (
	ModeNone Mode = iota
	Mode2x
	Mode3x
	Mode4x
	Mode6x
	Mode8x
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case Mode2x:
		return "2x"
	case Mode3x:
		return "3x"
	case Mode4x:
		return "4x"
	case Mode6x:
		return "6x"
	case Mode8x:
		return "8x"
	default:
		return "Unknown"
	}
}

// Factor returns the integer upsampling ratio for a mode.
func (m Mode) Factor() int {
	switch m {
	case Mode2x:
		return 2
	case Mode3x:
		return 3
	case Mode4x:
		return 4
	case Mode6x:
		return 6
	case Mode8x:
		return 8
	default:
		return 1
	}
}

// antiAliasOrder is the filter order used for the zero-stuffing
// anti-alias lowpass, whichever prototype is selected; matches the order
// the teacher's design package tests against for steep, stable
// multi-section cascades.
const antiAliasOrder = 8

// Upsampler zero-stuffs its input by a configured integer factor and runs
// the result through an anti-aliasing lowpass, built once per reconfigure
// rather than per block.
type Upsampler struct {
	sampleRate float64
	mode       Mode
	prototype  design.Prototype

	pendingSampleRate float64
	pendingMode       Mode
	pendingPrototype  design.Prototype
	modified          bool

	factor int
	cutoff float64
	chain  *biquad.Chain
}

// Init prepares u with an initial sample rate and mode, using a
// Butterworth anti-alias lowpass.
func (u *Upsampler) Init(sampleRate float64, mode Mode) {
	u.sampleRate = sampleRate
	u.mode = mode
	u.pendingSampleRate = sampleRate
	u.pendingMode = mode
	u.pendingPrototype = design.Butterworth
	u.modified = true

	u.UpdateSettings()
}

// SetPrototype stages the analog filter family used for the anti-aliasing
// lowpass, applied on the next UpdateSettings call. Chebyshev1/Chebyshev2
// trade passband ripple for a steeper rolloff than Butterworth; Bessel
// favors flat group delay at the cost of rolloff; Elliptic gives the
// steepest rolloff for a given order.
func (u *Upsampler) SetPrototype(p design.Prototype) {
	if p == u.pendingPrototype {
		return
	}

	u.pendingPrototype = p
	u.modified = true
}

// SetSampleRate stages a new host sample rate, applied on the next
// UpdateSettings call.
func (u *Upsampler) SetSampleRate(sr float64) {
	if sr == u.pendingSampleRate {
		return
	}

	u.pendingSampleRate = sr
	u.modified = true
}

// SetMode stages a new oversampling mode, applied on the next
// UpdateSettings call.
func (u *Upsampler) SetMode(mode Mode) {
	if mode == u.pendingMode {
		return
	}

	u.pendingMode = mode
	u.modified = true
}

// Modified reports whether a staged setting is waiting to be applied.
func (u *Upsampler) Modified() bool {
	return u.modified
}

// Oversampling returns the currently active integer upsampling factor.
func (u *Upsampler) Oversampling() int {
	return u.factor
}

// OversampledRate returns the currently active effective sample rate.
func (u *Upsampler) OversampledRate() float64 {
	return u.sampleRate * float64(u.factor)
}

// UpdateSettings applies staged settings and rebuilds the anti-aliasing
// filter. A no-op when nothing is staged.
func (u *Upsampler) UpdateSettings() {
	if !u.modified {
		return
	}

	u.sampleRate = u.pendingSampleRate
	u.mode = u.pendingMode
	u.prototype = u.pendingPrototype
	u.factor = u.mode.Factor()
	u.modified = false

	if u.factor <= 1 || u.sampleRate <= 0 {
		u.chain = nil

		return
	}

	oversampledRate := u.sampleRate * float64(u.factor)
	u.cutoff = 0.9 * (u.sampleRate / 2)

	coeffs := u.prototype.LP(u.cutoff, antiAliasOrder, oversampledRate)
	u.chain = biquad.NewChain(coeffs)
}

// Upsample zero-stuffs src by the active factor into dst and runs the
// anti-aliasing lowpass, restoring the gain zero-stuffing divides away.
// dst must have length len(src)*Oversampling().
func (u *Upsampler) Upsample(dst, src []float64) {
	factor := u.factor
	if factor <= 1 {
		copy(dst, src)

		return
	}

	for i := range dst {
		dst[i] = 0
	}

	for i, x := range src {
		dst[i*factor] = x
	}

	if u.chain != nil {
		u.chain.ProcessBlock(dst)
	}

	gain := float64(factor)
	for i := range dst {
		dst[i] *= gain
	}
}
