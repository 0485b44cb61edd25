package biquad

// ProcessX4 filters count samples from src into dst through four cascaded
// biquads with a three-sample fill pipeline, updating st in place. dst and
// src may alias only with equal pointers.
//
// A 4-bit mask tracks which of the four lanes are live. During the first
// (up to) three input samples only the lanes enabled by mask run; after
// that all four lanes run unconditionally and lane 3's output is emitted
// per input sample. Once input is exhausted, mask is left-shifted with a
// 4-bit wrap and the still-live lanes continue draining until mask is 0,
// producing three additional trailing outputs.
func ProcessX4(dst, src []float64, count int, st *StateX4) {
	if count == 0 {
		return
	}

	processX4Core(dst, src, count, &st.C, &st.D)
}

// processX4Core implements the x4 cascade against an explicit coefficient
// and delay block, so the x8 engine can run two independent passes of the
// exact same arithmetic without dynamic dispatch.
func processX4Core(dst, src []float64, count int, c *[4]LaneCoeffs, d *[8]float64) {
	var s, s2, p1, p2 [4]float64

	mask := 0
	i := 0
	out := 0

	// Startup: fill the pipeline, running only the lanes mask enables.
	for {
		s[0] = src[i]
		mask |= 1

		s2[0] = c[0].A0*s[0] + d[0]
		p1[0] = c[0].A1*s[0] + c[0].B1*s2[0]
		p2[0] = c[0].A2*s[0] + c[0].B2*s2[0]
		d[0] = d[4] + p1[0]
		d[4] = p2[0]

		if mask&0x2 != 0 {
			s2[1] = c[1].A0*s[1] + d[1]
			p1[1] = c[1].A1*s[1] + c[1].B1*s2[1]
			p2[1] = c[1].A2*s[1] + c[1].B2*s2[1]
			d[1] = d[5] + p1[1]
			d[5] = p2[1]
		}
		if mask&0x4 != 0 {
			s2[2] = c[2].A0*s[2] + d[2]
			p1[2] = c[2].A1*s[2] + c[2].B1*s2[2]
			p2[2] = c[2].A2*s[2] + c[2].B2*s2[2]
			d[2] = d[6] + p1[2]
			d[6] = p2[2]
		}

		s[3] = s2[2]
		s[2] = s2[1]
		s[1] = s2[0]

		mask <<= 1
		i++
		if i >= count || i >= 3 {
			break
		}
	}

	// Steady state: all four lanes run unconditionally.
	for ; i < count; i++ {
		s[0] = src[i]

		s2[0] = c[0].A0*s[0] + d[0]
		s2[1] = c[1].A0*s[1] + d[1]
		s2[2] = c[2].A0*s[2] + d[2]
		s2[3] = c[3].A0*s[3] + d[3]

		p1[0] = c[0].A1*s[0] + c[0].B1*s2[0]
		p1[1] = c[1].A1*s[1] + c[1].B1*s2[1]
		p1[2] = c[2].A1*s[2] + c[2].B1*s2[2]
		p1[3] = c[3].A1*s[3] + c[3].B1*s2[3]

		p2[0] = c[0].A2*s[0] + c[0].B2*s2[0]
		p2[1] = c[1].A2*s[1] + c[1].B2*s2[1]
		p2[2] = c[2].A2*s[2] + c[2].B2*s2[2]
		p2[3] = c[3].A2*s[3] + c[3].B2*s2[3]

		d[0] = d[4] + p1[0]
		d[1] = d[5] + p1[1]
		d[2] = d[6] + p1[2]
		d[3] = d[7] + p1[3]

		d[4] = p2[0]
		d[5] = p2[1]
		d[6] = p2[2]
		d[7] = p2[3]

		dst[out] = s2[3]
		out++
		s[3] = s2[2]
		s[2] = s2[1]
		s[1] = s2[0]
	}

	// Drain: no more input; shift the mask with a 4-bit wrap and keep
	// emitting from the still-live lanes until none remain. dst is written
	// through a separate output counter, not the input index i, matching
	// the native kernel's independent *(dst++) pointer: the three startup
	// iterations never write dst, so the steady-state loop's writes start
	// at dst[0], and drain continues the same sequential count from there.
	// Guarded by out < count: for count >= 4 this never binds and mask==0
	// always ends the loop first, matching the native kernel exactly; for
	// count < 4 the native kernel's do-while drains three iterations
	// unconditionally and would write past a count-sized dst, so this
	// clamps to the documented count-outputs-for-count-inputs contract
	// instead.
	for out < count {
		if mask&0x2 != 0 {
			s2[1] = c[1].A0*s[1] + d[1]
			p1[1] = c[1].A1*s[1] + c[1].B1*s2[1]
			p2[1] = c[1].A2*s[1] + c[1].B2*s2[1]
			d[1] = d[5] + p1[1]
			d[5] = p2[1]
		}
		if mask&0x4 != 0 {
			s2[2] = c[2].A0*s[2] + d[2]
			p1[2] = c[2].A1*s[2] + c[2].B1*s2[2]
			p2[2] = c[2].A2*s[2] + c[2].B2*s2[2]
			d[2] = d[6] + p1[2]
			d[6] = p2[2]
		}

		s2[3] = c[3].A0*s[3] + d[3]
		p1[3] = c[3].A1*s[3] + c[3].B1*s2[3]
		p2[3] = c[3].A2*s[3] + c[3].B2*s2[3]
		d[3] = d[7] + p1[3]
		d[7] = p2[3]

		dst[out] = s2[3]
		out++
		s[3] = s2[2]
		s[2] = s2[1]
		s[1] = s2[0]

		mask = (mask << 1) & 0x0f
		if mask == 0 {
			break
		}
	}
}
