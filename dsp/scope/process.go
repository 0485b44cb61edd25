package scope

import "github.com/cwbudde/algo-rtdsp/dsp/trigger"

// Process runs count input samples through the capture state machine and
// writes count samples to dst according to the output mode. UpdateSettings
// is applied first if a setting is pending.
func (o *Oscilloscope) Process(dst, src []float64, count int) {
	switch o.outputMode {
	case OutputCopy:
		copy(dst[:count], src[:count])
	default:
		for i := 0; i < count; i++ {
			dst[i] = 0
		}
	}

	o.UpdateSettings()

	// src is advanced by each state-machine step's own consumed sample
	// count, so a block split across outer-loop iterations at a ring wrap
	// (whichever state the next iteration runs in) keeps input samples in
	// FIFO order instead of re-reading the block's start.
	for count > 0 {
		var consumed int

		switch o.state {
		case Acquiring:
			consumed, count = o.acquireStep(src, count)
		case Sweeping:
			consumed, count = o.sweepStep(src, count)
		}

		src = src[consumed:]
	}
}

// acquireStep upsamples the next batch of input into the capture ring and
// feeds each oversampled result to the trigger, switching to Sweeping on a
// fire. It returns the samples consumed from src and the remaining count.
func (o *Oscilloscope) acquireStep(src []float64, count int) (consumed, remainingCount int) {
	toProcess := o.oversampling * count
	remaining := CaptureSize - o.bufHead

	toStore := toProcess
	if toStore > remaining {
		toStore = remaining
	}

	toDo := toStore / o.oversampling
	toDoFactor := toDo * o.oversampling

	o.over.Upsample(o.captureBuf[o.bufHead:o.bufHead+toDoFactor], o.filterInput(src, toDo))

	for n := 0; n < toStore; n++ {
		x := o.captureBuf[o.bufHead+n]
		o.trig.SingleSampleProcessor(x)

		if o.trig.GetTriggerState() == trigger.Fired {
			o.state = Sweeping
			o.triggerAt = o.bufHead + n
			o.sweepHead = 0
			o.sweepComplete = false
			o.sweepFromThePast()
		}
	}

	o.bufHead = (o.bufHead + toStore) % CaptureSize

	return toDo, count - toDo
}

// sweepFromThePast splices the nPreTrigger oversampled samples immediately
// preceding o.triggerAt (excluding the trigger sample itself) into the
// sweep buffer at sweepHead.
func (o *Oscilloscope) sweepFromThePast() {
	var copyHead int
	if o.triggerAt < o.preTrigger {
		copyHead = CaptureSize - o.preTrigger + o.triggerAt
	} else {
		copyHead = o.triggerAt - o.preTrigger
	}

	if copyHead >= o.triggerAt {
		n := CaptureSize - copyHead
		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[copyHead:CaptureSize])
		o.sweepHead += n

		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[:o.triggerAt])
		o.sweepHead += o.triggerAt
	} else {
		n := o.triggerAt - copyHead
		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[copyHead:o.triggerAt])
		o.sweepHead += n
	}
}

// sweepStep copies the post-trigger segment available so far into the
// sweep buffer, ingests the next batch of input (without feeding the
// trigger), and returns to Acquiring once the sweep is full. It returns
// the samples consumed from src and the remaining count.
func (o *Oscilloscope) sweepStep(src []float64, count int) (consumed, remainingCount int) {
	copyTail := (o.triggerAt + o.postTrigger) % CaptureSize
	if o.bufHead < copyTail {
		copyTail = o.bufHead
	}

	if o.triggerAt <= copyTail {
		n := copyTail - o.triggerAt + 1
		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[o.triggerAt:o.triggerAt+n])
		o.sweepHead += n
	} else {
		n1 := CaptureSize - o.triggerAt
		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[o.triggerAt:CaptureSize])
		o.sweepHead += n1

		// Roll forward rather than leaving a stale pre-wrap index: once the
		// post-trigger copy has drained across the ring wrap, the
		// remainder reads from offset 0 on every subsequent iteration.
		o.triggerAt = CaptureSize

		n2 := copyTail + 1
		copy(o.sweepBuf[o.sweepHead:], o.captureBuf[:n2])
		o.sweepHead += n2
	}

	toProcess := o.oversampling * count
	remaining := CaptureSize - o.bufHead

	toStore := toProcess
	if toStore > remaining {
		toStore = remaining
	}

	toDo := toStore / o.oversampling
	toDoFactor := toDo * o.oversampling

	o.over.Upsample(o.captureBuf[o.bufHead:o.bufHead+toDoFactor], o.filterInput(src, toDo))

	o.bufHead = (o.bufHead + toStore) % CaptureSize

	if o.sweepHead >= o.limit-1 {
		o.state = Acquiring
		o.sweepHead = 0
		o.sweepComplete = true
	}

	return toDo, count - toDo
}
