package kernel

import (
	"github.com/cwbudde/algo-vecmath"
)

// Copy copies src into dst. dst must have length >= len(src).
//
// This is pure data movement with no numeric content, so it is not routed
// through the SIMD-dispatch registry the other primitives use; it is the
// builtin copy.
func Copy(dst, src []float64) {
	copy(dst, src)
}

// FillZero zeroes buf in place.
func FillZero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Mul3 computes dst[i] = a[i] * b[i] for i in [0, n).
//
// Used to apply the analysis window to a ring-buffer segment
// (dst=vSigRe, a=ring segment, b=window segment).
func Mul3(dst, a, b []float64, n int) {
	vecmath.MulBlock(dst[:n], a[:n], b[:n])
}

// MulK2 scales buf[i] *= k in place for i in [0, n).
//
// Used to scale a freshly generated envelope table by shift/N.
func MulK2(buf []float64, k float64, n int) {
	vecmath.ScaleBlockInPlace(buf[:n], k)
}

// Mix2 computes dst[i] = k1*dst[i] + k2*src[i] for i in [0, n), using
// scratch as zero-allocation working space (must have length >= n).
//
// Used for the exponential magnitude smoothing step:
// amp <- (1-tau)*amp + tau*mag.
func Mix2(dst, src []float64, k1, k2 float64, scratch []float64, n int) {
	vecmath.ScaleBlock(scratch[:n], src[:n], k2)
	vecmath.ScaleBlockInPlace(dst[:n], k1)
	vecmath.AddBlockInPlace(dst[:n], scratch[:n])
}
