package biquad

// LaneCoeffs holds the transfer-function coefficients for one second-order
// section in the transposed direct-form-II layout the real-time cascade
// variants (StateX1..StateX8) use:
//
//	y   = a0*x + d0
//	d0' = d1 + a1*x + b1*y
//	d1' = a2*x + b2*y
//
// Unlike [Coefficients] (which normalizes a0 to 1 for the offline Section/
// Chain types), LaneCoeffs stores a0 explicitly because the cascade
// variants below are ports of a fixed-layout native kernel that always
// carries it.
type LaneCoeffs struct {
	A0, A1, A2 float64
	B1, B2     float64
}

// StateX1 holds the coefficients and delay memory for a single biquad
// processed one sample at a time.
type StateX1 struct {
	C LaneCoeffs
	D [2]float64
}

// StateX2 holds two cascaded biquads (the output of lane 0 feeds lane 1)
// and their delay memory, split into two interleaved pairs.
type StateX2 struct {
	C [2]LaneCoeffs
	D [4]float64
}

// StateX4 holds four cascaded biquads and their delay memory, laid out as
// two banks of four: D[0:4] is the d0 register per lane, D[4:8] is the d1
// register per lane.
type StateX4 struct {
	C [4]LaneCoeffs
	D [8]float64
}

// StateX8 holds eight cascaded biquads realized as two sequential passes
// of the x4 algorithm, pass 1 consuming pass 0's output.
//
// The native kernel this is ported from shares a single 12-float delay
// array between both passes by reinterpreting part of it as the second
// pass's coefficient block — a documented-as-broken aliasing trick (the
// source comment calls it out: "this code already works badly"), which on
// inspection reads the second pass's a1/a2 coefficients out of the first
// pass's d1 delay bank. Reproducing that would corrupt whichever of
// {pass-1 coefficients, pass-0 cross-call delay state} happened to alias.
// Per the spec's own exemption for x8 ("leaves the x8 correctness to be
// validated against a reference x4-pair cascade rather than against the
// source x8"), this keeps the two-pass structure and the x4 per-pass
// arithmetic exactly, but gives each pass its own real coefficient set and
// its own persistent 8-float delay bank (16 floats total) instead of
// aliasing. See DESIGN.md.
type StateX8 struct {
	C [2][4]LaneCoeffs
	D [2][8]float64
}
