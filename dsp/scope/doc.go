// Package scope implements a triggered oscilloscope capture engine: input
// is oversampled into a circular capture ring, an edge trigger watches the
// oversampled stream, and on a fire the pre-trigger history and the
// following post-trigger samples are spliced into one contiguous sweep.
package scope
