// Package oversample implements zero-stuffing upsampling with an
// anti-aliasing lowpass, used by the oscilloscope to acquire at a higher
// effective rate than the host sample rate for finer trigger resolution.
package oversample
