// Package kernel adapts the black-box vector primitives that the
// spectrum analyzer is built on top of: copy, fill-zero, three-operand
// multiply, scale-by-scalar, two-term mix, real-to-packed-complex
// conversion, the packed forward FFT, and packed-complex modulus.
//
// None of the per-block functions allocate; only NewPlan does. They are
// thin wrappers over github.com/cwbudde/algo-vecmath (SIMD-dispatched
// element-wise ops) and github.com/MeKo-Christian/algo-fft (the
// power-of-two FFT backend), so that the caller, dsp/spectrum/analyzer,
// never needs to know which vector backend is selected for the running
// CPU.
package kernel
