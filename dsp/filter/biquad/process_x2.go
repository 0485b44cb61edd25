package biquad

// ProcessX2 filters count samples from src into dst through two cascaded
// biquads with a one-sample pipeline, updating st in place. dst and src
// may alias only with equal pointers.
//
// Lane 0's output at sample i is not available to lane 1 until sample
// i+1 (the carry register r); the first call's first iteration runs lane
// 0 only, every subsequent iteration runs lane 1 on the previous carry
// and lane 0 on the new sample, and a final drain iteration runs lane 1
// on the last carry to emit the count-th output. This produces exactly
// count outputs for count inputs, aligned one sample behind the input
// during the body and caught up at drain.
func ProcessX2(dst, src []float64, count int, st *StateX2) {
	if count == 0 {
		return
	}

	c0, c1 := st.C[0], st.C[1]
	d0, d1 := st.D[0], st.D[1]
	d4, d5 := st.D[2], st.D[3]

	// Startup: lane 0 only.
	s := src[0]
	s2 := c0.A0*s + d0
	p1 := c0.A1*s + c0.B1*s2
	p2 := c0.A2*s + c0.B2*s2
	r := s2
	d0 = d1 + p1
	d1 = p2

	// Steady state: lane 1 on the carry, lane 0 on the new sample.
	for i := 1; i < count; i++ {
		s = src[i]
		r2 := c1.A0*r + d4
		s2 = c0.A0*s + d0

		q1 := c1.A1*r + c1.B1*r2
		p1 = c0.A1*s + c0.B1*s2
		q2 := c1.A2*r + c1.B2*r2
		p2 = c0.A2*s + c0.B2*s2

		r = s2
		dst[i-1] = r2

		d4 = d5 + q1
		d0 = d1 + p1
		d5 = q2
		d1 = p2
	}

	// Drain: lane 1 on the final carry.
	r2 := c1.A0*r + d4
	q1 := c1.A1*r + c1.B1*r2
	q2 := c1.A2*r + c1.B2*r2
	dst[count-1] = r2
	d4 = d5 + q1
	d5 = q2

	st.D[0], st.D[1], st.D[2], st.D[3] = d0, d1, d4, d5
}
