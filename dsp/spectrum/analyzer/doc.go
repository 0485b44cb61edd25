// Package analyzer implements a streaming FFT spectrum analyzer: samples
// arrive per channel through Process, accumulate in a per-channel ring
// buffer, and once enough samples have arrived for the configured FFT
// period a windowed FFT runs and its magnitude spectrum is exponentially
// smoothed into that channel's amplitude table. Reconfiguration (rank,
// window, envelope, reactivity, FFT rate) is staged by the Set* methods and
// fused into the next Process call, never applied on the spot.
package analyzer
