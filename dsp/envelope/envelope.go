package envelope

import "math"

// Type identifies a noise color to generate a reverse (flattening) envelope
// for.
type Type int

const (
	WhiteNoise Type = iota
	PinkNoise
	BrownNoise
	BlueNoise
	VioletNoise
)

// String returns a human-readable name for the noise color.
func (t Type) String() string {
	switch t {
	case WhiteNoise:
		return "White"
	case PinkNoise:
		return "Pink"
	case BrownNoise:
		return "Brown"
	case BlueNoise:
		return "Blue"
	case VioletNoise:
		return "Violet"
	default:
		return "Unknown"
	}
}

// Generate returns a reverse-noise envelope table of the given length: the
// per-bin multiplier that, applied to the magnitude spectrum of that noise
// color, flattens it.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	tbl := make([]float64, length)
	FillInto(tbl, t)

	return tbl
}

// FillInto writes a reverse-noise envelope of len(tbl) directly into tbl,
// allocating nothing. The analyzer rebuilds its envelope table into a
// fixed, init-time buffer only on reconfiguration, never in the per-sample
// hot path.
func FillInto(tbl []float64, t Type) {
	n := len(tbl)
	if n == 0 {
		return
	}

	for k := range tbl {
		tbl[k] = reverseShape(t, binFreq(k, n))
	}
}

// binFreq maps a table index to the frequency exponent's argument. Bin 0
// (DC) is aliased to bin 1's frequency so every shape stays finite there
// instead of producing a zero or infinite multiplier.
func binFreq(k, n int) float64 {
	if k == 0 {
		return 1
	}

	return float64(k)
}

// reverseShape is the magnitude-domain inverse of noise color t's PSD
// slope: PSD ~ f^a has magnitude ~ f^(a/2), so the flattening envelope is
// f^(-a/2).
func reverseShape(t Type, f float64) float64 {
	switch t {
	case WhiteNoise:
		return 1
	case PinkNoise:
		// PSD ~ 1/f, magnitude ~ 1/sqrt(f).
		return math.Sqrt(f)
	case BrownNoise:
		// PSD ~ 1/f^2, magnitude ~ 1/f.
		return f
	case BlueNoise:
		// PSD ~ f, magnitude ~ sqrt(f).
		return 1 / math.Sqrt(f)
	case VioletNoise:
		// PSD ~ f^2, magnitude ~ f.
		return 1 / f
	default:
		return 1
	}
}
