package kernel

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Plan wraps a rank-specific forward FFT plan. The analyzer holds one Plan
// per configured rank and rebuilds it only on reconfigure, never in the
// per-sample hot path.
type Plan struct {
	rank int
	p    *algofft.Plan[complex128]
}

// NewPlan builds a forward/inverse FFT plan for an FFT of size 1<<rank.
// This is the only allocation in the analyzer's reconfiguration path that
// is not proportional to a fixed, init-time buffer size; it only runs when
// the rank changes.
func NewPlan(rank int) (*Plan, error) {
	n := 1 << uint(rank)

	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	return &Plan{rank: rank, p: p}, nil
}

// Rank returns the FFT rank this plan was built for.
func (p *Plan) Rank() int { return p.rank }

// PackedComplexR2C packs a real signal into a complex buffer: dst[i] =
// complex(src[i], 0). dst must have length >= len(src).
func PackedComplexR2C(dst []complex128, src []float64) {
	for i, x := range src {
		dst[i] = complex(x, 0)
	}
}

// PackedDirectFFT performs an in-place forward FFT of buf using plan.
// len(buf) must equal 1<<plan.Rank().
func PackedDirectFFT(plan *Plan, buf []complex128) error {
	return plan.p.Forward(buf, buf)
}

// PackedComplexMod computes dst[i] = |buf[i]| for i in [0, n), using re/im
// as zero-allocation deinterleaving scratch (each must have length >= n).
//
// algo-vecmath operates on separate real/imaginary slices, while the FFT
// plan produces native Go []complex128, so the two halves have to meet
// somewhere — here, rather than in every caller.
func PackedComplexMod(dst []float64, buf []complex128, re, im []float64, n int) {
	for i := 0; i < n; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	vecmath.Magnitude(dst[:n], re[:n], im[:n])
}
