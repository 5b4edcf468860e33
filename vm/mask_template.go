package vm

// maskedTemplate implements the masked execution template used by the
// ADD/SUB/MUL vector opcodes (DIVVV/DIVVS follow the same shape in their own
// loop; comparison and shuffle opcodes do not consult VM and do not use it):
// a fresh all-zero MVL-lane result,
// with lane i (0 <= i < VL) overwritten by compute(i) only when the VM bit
// for lane i is active. Lanes >= VL, and masked-off lanes within [0, VL),
// are left at zero (invariants I1 and P2 — merge-with-zero, not
// keep-previous).
func maskedTemplate(s *State, compute func(i int) int32) [MVL]int32 {
	var result [MVL]int32
	vl := int(s.VL.Get())
	for i := 0; i < vl; i++ {
		if s.VM.Lane(i) {
			result[i] = compute(i)
		}
	}
	return result
}

// unmaskedTemplate is the same zero-fill/VL-bound shape as maskedTemplate
// but without consulting VM — used by LV/LVWS/LVI, which spec.md §4.E
// states are unmasked by VM.
func unmaskedTemplate(s *State, compute func(i int) int32) [MVL]int32 {
	var result [MVL]int32
	vl := int(s.VL.Get())
	for i := 0; i < vl; i++ {
		result[i] = compute(i)
	}
	return result
}
