package design

import "github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"

// Prototype selects which analog filter family a cascade is derived from.
// Each family trades passband flatness, transition steepness, and group
// delay differently, matching the collaborator choices original_source's
// design callers exposed as a designer selector rather than hand-picking
// one family at compile time.
type Prototype int

const (
	Butterworth Prototype = iota
	Chebyshev1
	Chebyshev2
	Bessel
	Elliptic
)

// String returns a human-readable name for the prototype.
func (p Prototype) String() string {
	switch p {
	case Butterworth:
		return "Butterworth"
	case Chebyshev1:
		return "Chebyshev1"
	case Chebyshev2:
		return "Chebyshev2"
	case Bessel:
		return "Bessel"
	case Elliptic:
		return "Elliptic"
	default:
		return "Unknown"
	}
}

// defaultRippleDB and defaultStopbandDB are the passband ripple and
// stopband attenuation used when a prototype is selected through LP/HP
// instead of the ripple-parameterized Chebyshev1LP/Chebyshev2LP/EllipticLP
// designers directly: 0.5 dB ripple is the classic "mild" Chebyshev
// choice, 60 dB stopband is enough headroom for an elliptic anti-alias or
// coupling filter without pushing its order requirements up.
const (
	defaultRippleDB   = 0.5
	defaultStopbandDB = 60
)

// LP designs a lowpass cascade of order from the selected prototype.
func (p Prototype) LP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	switch p {
	case Chebyshev1:
		return Chebyshev1LP(freq, order, defaultRippleDB, sampleRate)
	case Chebyshev2:
		return Chebyshev2LP(freq, order, defaultRippleDB, sampleRate)
	case Bessel:
		return BesselLP(freq, order, sampleRate)
	case Elliptic:
		return EllipticLP(freq, order, defaultRippleDB, defaultStopbandDB, sampleRate)
	default:
		return ButterworthLP(freq, order, sampleRate)
	}
}

// HP designs a highpass cascade of order from the selected prototype.
func (p Prototype) HP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	switch p {
	case Chebyshev1:
		return Chebyshev1HP(freq, order, defaultRippleDB, sampleRate)
	case Chebyshev2:
		return Chebyshev2HP(freq, order, defaultRippleDB, sampleRate)
	case Bessel:
		return BesselHP(freq, order, sampleRate)
	case Elliptic:
		return EllipticHP(freq, order, defaultRippleDB, defaultStopbandDB, sampleRate)
	default:
		return ButterworthHP(freq, order, sampleRate)
	}
}
