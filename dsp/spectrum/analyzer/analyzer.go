package analyzer

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/envelope"
	"github.com/cwbudde/algo-rtdsp/dsp/kernel"
	"github.com/cwbudde/algo-rtdsp/dsp/window"
)

// alignSize is the SIMD alignment expressed in float64 samples (64 bytes /
// 8 bytes per sample), used to round the per-channel ring buffer length up
// the way the original rounds its byte length up to ALIGN.
const alignSize = 8

// Reconfigure bits accumulate pending changes applied by the next Process
// call's internal reconfigure step.
const (
	REnvelope = 1 << iota
	RWindow
	RTau
	RCounters
	RAnalysis

	RAll = REnvelope | RWindow | RTau | RCounters | RAnalysis
)

// FreqScale selects the grid spacing ReadFrequencies builds.
type FreqScale int

const (
	FreqScaleLogarithmic FreqScale = iota
	FreqScaleLinear
)

// String returns a human-readable name for the frequency scale.
func (s FreqScale) String() string {
	switch s {
	case FreqScaleLogarithmic:
		return "Logarithmic"
	case FreqScaleLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// channelState holds one channel's ring buffer, smoothed amplitude table,
// and FFT scheduling counters.
type channelState struct {
	buffer []float64
	amp    []float64

	head    int
	counter int
	delay   int

	freeze bool
	active bool
}

// Analyzer is a streaming FFT spectrum analyzer serving any number of
// channels from one set of shared scratch buffers.
type Analyzer struct {
	channels []channelState

	maxRank            int
	rank               int
	sampleRate         int
	maxSampleRate      int
	bufSize            int
	fftPeriod          int
	reactivity         float64
	tau                float64
	rate               float64
	minRate            float64
	shift              float64
	reconfigurePending uint32
	envelopeType       envelope.Type
	windowType         window.Type
	active             bool

	sigRe       []float64
	fftBuf      []complex128
	windowTbl   []float64
	envelopeTbl []float64

	reScratch  []float64
	imScratch  []float64
	magScratch []float64
	mixScratch []float64

	plan *kernel.Plan
}

// New returns an analyzer with the original's defaults (rate 1 Hz, minRate
// 1 Hz, shift 1, Hann window, pink-noise envelope, active). Init must be
// called before use.
func New() *Analyzer {
	return &Analyzer{
		rate:         1,
		minRate:      1,
		shift:        1,
		tau:          1,
		windowType:   window.TypeHann,
		envelopeType: envelope.PinkNoise,
		active:       true,
	}
}

// Init allocates all buffers for the given channel count and FFT rank
// ceiling. Idempotent: calling it again re-allocates from scratch.
func (a *Analyzer) Init(channels, maxRank, maxSampleRate int, minRate float64) error {
	if err := validateInit(channels, maxRank, maxSampleRate, minRate); err != nil {
		return err
	}

	fftSize := 1 << uint(maxRank)
	fftCsize := fftSize/2 + 1

	bufSize := alignUp(fftSize*2+int(math.Ceil(float64(maxSampleRate)/minRate)), alignSize)

	chans := make([]channelState, channels)
	for i := range chans {
		chans[i] = channelState{
			buffer: make([]float64, bufSize),
			amp:    make([]float64, fftCsize),
			active: true,
		}
	}

	a.channels = chans
	a.maxRank = maxRank
	a.rank = maxRank
	a.maxSampleRate = maxSampleRate
	a.minRate = minRate
	a.bufSize = bufSize

	a.sigRe = make([]float64, fftSize)
	a.fftBuf = make([]complex128, fftSize)
	a.windowTbl = make([]float64, fftSize)
	a.envelopeTbl = make([]float64, fftSize)

	a.reScratch = make([]float64, fftCsize)
	a.imScratch = make([]float64, fftCsize)
	a.magScratch = make([]float64, fftCsize)
	a.mixScratch = make([]float64, fftCsize)

	a.plan = nil
	a.reconfigurePending = RAll

	return nil
}

// alignUp rounds n up to the nearest multiple of align.
func alignUp(n, align int) int {
	if rem := n % align; rem != 0 {
		n += align - rem
	}
	return n
}

// SetSampleRate stages a new host sample rate, clamped to the Init-time
// ceiling, applied on the next Process-driven reconfigure.
func (a *Analyzer) SetSampleRate(sr int) {
	if sr > a.maxSampleRate {
		sr = a.maxSampleRate
	}
	if a.sampleRate == sr {
		return
	}

	a.sampleRate = sr
	a.reconfigurePending |= RAll
}

// SetRate stages a new FFT rate in Hz (FFTs per second), clamped to the
// Init-time floor.
func (a *Analyzer) SetRate(rate float64) {
	if rate < a.minRate {
		rate = a.minRate
	}
	if a.rate == rate {
		return
	}

	a.rate = rate
	a.reconfigurePending |= RCounters
}

// SetWindow stages a new analysis window.
func (a *Analyzer) SetWindow(w window.Type) {
	if a.windowType == w {
		return
	}

	a.windowType = w
	a.reconfigurePending |= RWindow
}

// SetEnvelope stages a new noise-compensation envelope.
func (a *Analyzer) SetEnvelope(e envelope.Type) {
	if a.envelopeType == e {
		return
	}

	a.envelopeType = e
	a.reconfigurePending |= REnvelope
}

// SetShift stages a new envelope scale factor.
func (a *Analyzer) SetShift(shift float64) {
	if a.shift == shift {
		return
	}

	a.shift = shift
	a.reconfigurePending |= REnvelope
}

// SetReactivity stages a new smoothing time constant, in seconds.
func (a *Analyzer) SetReactivity(reactivity float64) {
	if a.reactivity == reactivity {
		return
	}

	a.reactivity = reactivity
	a.reconfigurePending |= RTau
}

// SetRank stages a new FFT rank. Returns false without effect when rank is
// outside [2, maxRank].
func (a *Analyzer) SetRank(rank int) bool {
	if rank < 2 || rank > a.maxRank {
		return false
	}
	if a.rank == rank {
		return true
	}

	a.rank = rank
	a.reconfigurePending |= RAll

	return true
}

// SetActive enables or disables analysis globally. Takes effect
// immediately: per-channel FFTs are skipped (and their amplitude tables
// zeroed) on the very next Process call, with no reconfigure gate.
func (a *Analyzer) SetActive(active bool) {
	a.active = active
}

// FreezeChannel holds (or releases) a channel's amplitude table at its
// current value, skipping further FFTs while frozen. Takes effect
// immediately. Returns false for an out-of-range channel.
func (a *Analyzer) FreezeChannel(channel int, freeze bool) bool {
	if channel < 0 || channel >= len(a.channels) {
		return false
	}

	a.channels[channel].freeze = freeze

	return true
}

// EnableChannel enables or disables one channel's analysis. Takes effect
// immediately. Returns false for an out-of-range channel.
func (a *Analyzer) EnableChannel(channel int, enable bool) bool {
	if channel < 0 || channel >= len(a.channels) {
		return false
	}

	a.channels[channel].active = enable

	return true
}

// Rank returns the analyzer's currently active FFT rank.
func (a *Analyzer) Rank() int {
	return a.rank
}

// SampleRate returns the currently active host sample rate.
func (a *Analyzer) SampleRate() int {
	return a.sampleRate
}

// Tau returns the currently active exponential smoothing coefficient.
func (a *Analyzer) Tau() float64 {
	return a.tau
}

// FFTPeriod returns the currently active number of samples between FFTs.
func (a *Analyzer) FFTPeriod() int {
	return a.fftPeriod
}

// Modified reports whether a Set* call has staged a change not yet applied
// by reconfigure.
func (a *Analyzer) Modified() bool {
	return a.reconfigurePending != 0
}

// reconfigure applies all pending staged changes in R_ENVELOPE, R_WINDOW,
// R_TAU, R_COUNTERS, R_ANALYSIS order and clears the pending mask. A no-op
// when nothing is pending.
func (a *Analyzer) reconfigure() {
	if a.reconfigurePending == 0 {
		return
	}

	fftSize := 1 << uint(a.rank)

	if a.rate != 0 {
		a.fftPeriod = int(float64(a.sampleRate) / a.rate)
	}

	if a.plan == nil || a.plan.Rank() != a.rank {
		if plan, err := kernel.NewPlan(a.rank); err == nil {
			a.plan = plan
		}
	}

	if a.reconfigurePending&REnvelope != 0 {
		envelope.FillInto(a.envelopeTbl[:fftSize], a.envelopeType)
		kernel.MulK2(a.envelopeTbl, a.shift/float64(fftSize), fftSize)
	}

	if a.reconfigurePending&RAnalysis != 0 {
		for i := range a.channels {
			kernel.FillZero(a.channels[i].amp)
		}
	}

	if a.reconfigurePending&RWindow != 0 {
		window.FillInto(a.windowTbl[:fftSize], a.windowType)
	}

	if a.reconfigurePending&RTau != 0 {
		samplesPerReactivity := a.rate * a.reactivity
		a.tau = 1 - math.Exp(math.Log(1-math.Sqrt(0.5))/samplesPerReactivity)
	}

	if a.reconfigurePending&RCounters != 0 {
		step := fftSize / len(a.channels)
		step -= step & 0x3

		for i := range a.channels {
			delay := i * step
			a.channels[i].counter = delay
			a.channels[i].delay = delay
		}
	}

	if a.reconfigurePending&RAnalysis != 0 {
		for i := range a.channels {
			kernel.FillZero(a.channels[i].amp)
		}
	}

	a.reconfigurePending = 0
}

// runFFT extracts the current FFT window from ch's ring, windows it,
// transforms it, and mixes the resulting magnitude spectrum into ch's
// amplitude table.
func (a *Analyzer) runFFT(ch *channelState) {
	fftSize := 1 << uint(a.rank)
	fftCsize := fftSize/2 + 1

	offset := ch.head - ch.delay
	if offset < 0 {
		offset += a.bufSize
	}

	count := a.bufSize - offset
	if count < fftSize {
		kernel.Mul3(a.sigRe, ch.buffer[offset:], a.windowTbl, count)
		kernel.Mul3(a.sigRe[count:], ch.buffer, a.windowTbl[count:], fftSize-count)
	} else {
		kernel.Mul3(a.sigRe, ch.buffer[offset:], a.windowTbl, fftSize)
	}

	kernel.PackedComplexR2C(a.fftBuf, a.sigRe[:fftSize])
	kernel.PackedDirectFFT(a.plan, a.fftBuf[:fftSize])
	kernel.PackedComplexMod(a.magScratch, a.fftBuf, a.reScratch, a.imScratch, fftCsize)
	kernel.Mix2(ch.amp, a.magScratch, 1-a.tau, a.tau, a.mixScratch, fftCsize)
}

// Process appends samples for one channel, auto-applying any pending
// reconfiguration first, and runs zero or more FFTs as the per-channel
// counter crosses the configured FFT period.
func (a *Analyzer) Process(channel int, in []float64, samples int) {
	if channel < 0 || channel >= len(a.channels) {
		return
	}

	a.reconfigure()

	fftSize := 1 << uint(a.rank)
	ch := &a.channels[channel]

	for samples > 0 {
		toProcess := a.fftPeriod - ch.counter

		if toProcess <= 0 {
			if !ch.freeze {
				if a.active && ch.active {
					a.runFFT(ch)
				} else {
					kernel.FillZero(ch.amp)
				}
			}

			ch.counter -= a.fftPeriod

			continue
		}

		if toProcess > samples {
			toProcess = samples
		}
		if toProcess > fftSize {
			toProcess = fftSize
		}

		remaining := a.bufSize - ch.head
		if remaining < toProcess {
			kernel.Copy(ch.buffer[ch.head:], in[:remaining])
			kernel.Copy(ch.buffer, in[remaining:toProcess])
			ch.head = toProcess - remaining
		} else {
			kernel.Copy(ch.buffer[ch.head:ch.head+toProcess], in[:toProcess])
			ch.head += toProcess
		}

		ch.counter += toProcess
		in = in[toProcess:]
		samples -= toProcess
	}
}
