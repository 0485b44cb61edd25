// Package trigger implements the oscilloscope's edge-triggered per-sample
// detector: a small state machine that watches a signal cross zero in a
// configured direction and reports a one-shot FIRED observation on the
// sample that crossed.
package trigger
