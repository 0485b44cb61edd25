package trigger

// Type selects an edge direction and debounce style for the detector.
type Type int

const (
	None Type = iota
	SimpleRisingEdge
	SimpleFallingEdge
	AdvancedRisingEdge
	AdvancedFallingEdge
)

// String returns a human-readable name for the trigger kind.
func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case SimpleRisingEdge:
		return "SimpleRisingEdge"
	case SimpleFallingEdge:
		return "SimpleFallingEdge"
	case AdvancedRisingEdge:
		return "AdvancedRisingEdge"
	case AdvancedFallingEdge:
		return "AdvancedFallingEdge"
	default:
		return "Unknown"
	}
}

// State is the detector's current position in the trigger state machine.
type State int

const (
	Idle State = iota
	Waiting
	Fired
	Complete
)

// String returns a human-readable name for the detector state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Waiting:
		return "Waiting"
	case Fired:
		return "Fired"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// defaultHysteresis is the re-arm band width for the Advanced* kinds: after
// a fire, the signal must cross back through ±defaultHysteresis before the
// detector will arm for the next edge. No original_source is included for
// this collaborator, so the width is a documented, supplementable choice —
// see DESIGN.md — rather than a literal port.
const defaultHysteresis = 0.05

// Detector watches one sample stream for a configured edge and exposes a
// one-shot FIRED observation, matching spec.md §4.4's contract exactly:
// set_trigger_type, set_post_trigger_samples, update_settings,
// single_sample_processor, get_trigger_state.
type Detector struct {
	kind               Type
	postTriggerSamples int
	hysteresis         float64

	pendingKind               Type
	pendingPostTriggerSamples int
	modified                  bool

	state  State
	prev   float64
	armed  bool
	inited bool
}

// NewDetector returns a detector with no trigger type configured (IDLE).
func NewDetector() *Detector {
	return &Detector{hysteresis: defaultHysteresis, armed: true}
}

// SetTriggerType stages a trigger kind, applied on the next UpdateSettings.
func (d *Detector) SetTriggerType(kind Type) {
	if kind == d.pendingKind {
		return
	}

	d.pendingKind = kind
	d.modified = true
}

// SetPostTriggerSamples stages the post-trigger sample count propagated
// from the oscilloscope, applied on the next UpdateSettings.
func (d *Detector) SetPostTriggerSamples(n int) {
	if n == d.pendingPostTriggerSamples {
		return
	}

	d.pendingPostTriggerSamples = n
	d.modified = true
}

// PostTriggerSamples returns the currently active post-trigger sample count.
func (d *Detector) PostTriggerSamples() int {
	return d.postTriggerSamples
}

// UpdateSettings applies staged settings. A type change resets the state
// machine to IDLE (NONE) or WAITING (any real edge kind) and re-arms.
func (d *Detector) UpdateSettings() {
	if !d.modified {
		return
	}

	kindChanged := d.kind != d.pendingKind
	d.kind = d.pendingKind
	d.postTriggerSamples = d.pendingPostTriggerSamples
	d.modified = false

	if kindChanged {
		d.armed = true

		if d.kind == None {
			d.state = Idle
		} else {
			d.state = Waiting
		}
	}
}

// GetTriggerState returns the detector's current state.
func (d *Detector) GetTriggerState() State {
	return d.state
}

// SingleSampleProcessor advances the state machine by one sample. FIRED is
// observed for exactly one call (the one that crosses the edge); the next
// call always advances FIRED to COMPLETE, and the call after that rearms
// into WAITING.
func (d *Detector) SingleSampleProcessor(x float64) {
	if d.kind == None {
		d.state = Idle
		d.prev = x

		return
	}

	if !d.inited {
		d.inited = true
		d.state = Waiting
		d.prev = x

		return
	}

	switch d.state {
	case Idle:
		d.state = Waiting
	case Fired:
		d.state = Complete

		d.prev = x

		return
	case Complete:
		d.state = Waiting
	}

	d.updateArm(x)

	if d.state == Waiting && d.armed && d.crossed(x) {
		d.state = Fired
		d.armed = false
	}

	d.prev = x
}

// updateArm handles the Advanced* re-arm band: once fired, the detector
// will not arm again until the signal has crossed back through the
// opposite side of the hysteresis band.
func (d *Detector) updateArm(x float64) {
	if d.armed {
		return
	}

	switch d.kind {
	case AdvancedRisingEdge:
		if x < -d.hysteresis {
			d.armed = true
		}
	case AdvancedFallingEdge:
		if x > d.hysteresis {
			d.armed = true
		}
	default:
		d.armed = true
	}
}

// crossed reports whether x, following prev, crosses zero in the
// configured direction.
func (d *Detector) crossed(x float64) bool {
	switch d.kind {
	case SimpleRisingEdge, AdvancedRisingEdge:
		return d.prev < 0 && x >= 0
	case SimpleFallingEdge, AdvancedFallingEdge:
		return d.prev > 0 && x <= 0
	default:
		return false
	}
}
