// Package envelope generates inverse-noise compensation tables for the
// spectrum analyzer.
//
// A named noise color describes a power spectral density shape; its reverse
// envelope is the multiplier that, applied to the magnitude spectrum of that
// noise, flattens it. Pink noise (PSD ~ 1/f, magnitude ~ 1/sqrt(f)) is
// compensated by a sqrt(f) envelope, and the remaining colors follow the
// same rule against their own PSD slope.
package envelope
