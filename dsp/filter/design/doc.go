// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing. It includes RBJ-style single-
// section designers (Lowpass, Highpass, Notch) and cascaded high-order
// prototypes (Butterworth, Chebyshev1, Chebyshev2, Bessel, Elliptic)
// delegating to the design/pass sub-package; [Prototype] selects among the
// latter by a single enum for callers that configure the filter family at
// runtime.
package design
