package biquad

// ProcessX1 filters count samples from src into dst through a single
// biquad, updating st in place. dst and src may alias only with equal
// pointers (same backing slice, same offset).
//
// Ported from the native x1 kernel: the transposed-form recurrence is
// evaluated once per sample with no pipeline fill or drain.
func ProcessX1(dst, src []float64, count int, st *StateX1) {
	if count == 0 {
		return
	}

	a0, a1, a2 := st.C.A0, st.C.A1, st.C.A2
	b1, b2 := st.C.B1, st.C.B2
	d0, d1 := st.D[0], st.D[1]

	for i := 0; i < count; i++ {
		x := src[i]
		y := a0*x + d0
		p1 := a1*x + b1*y
		p2 := a2*x + b2*y

		dst[i] = y

		d0 = d1 + p1
		d1 = p2
	}

	st.D[0], st.D[1] = d0, d1
}
