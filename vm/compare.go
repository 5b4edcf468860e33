package vm

// compareVV evaluates cmp(VRF[aIdx][i], VRF[bIdx][i]) for i in [0, VL) and
// overwrites VM with the resulting bitstring. Unlike the arithmetic
// template, comparison opcodes are not masked by the current VM value — they
// overwrite it — and lanes outside [0, VL) are forced to 0.
func compareVV(s *State, aIdx, bIdx int, cmp func(x, y int32) bool) error {
	v1, err := s.VRF.Read(aIdx)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(bIdx)
	if err != nil {
		return err
	}
	return writeComparisonMask(s, func(i int) bool { return cmp(v1[i], v2[i]) })
}

// compareVS evaluates cmp(VRF[aIdx][i], SRF[bIdx]) for i in [0, VL).
func compareVS(s *State, aIdx, bIdx int, cmp func(x, y int32) bool) error {
	v1, err := s.VRF.Read(aIdx)
	if err != nil {
		return err
	}
	scalar, err := s.SRF.Read(bIdx)
	if err != nil {
		return err
	}
	return writeComparisonMask(s, func(i int) bool { return cmp(v1[i], scalar) })
}

func writeComparisonMask(s *State, cmp func(i int) bool) error {
	vl := int(s.VL.Get())
	var mask MaskRegister
	for i := 0; i < vl; i++ {
		mask.SetLane(i, cmp(i))
	}
	s.VM.Set(mask.Get())
	return nil
}

func eq(x, y int32) bool { return x == y }
func ne(x, y int32) bool { return x != y }
func gt(x, y int32) bool { return x > y }
func lt(x, y int32) bool { return x < y }
func ge(x, y int32) bool { return x >= y }
func le(x, y int32) bool { return x <= y }

func execSeqVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, eq) }
func execSeqVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, eq) }
func execSneVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, ne) }
func execSneVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, ne) }
func execSgtVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, gt) }
func execSgtVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, gt) }
func execSltVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, lt) }
func execSltVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, lt) }
func execSgeVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, ge) }
func execSgeVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, ge) }
func execSleVV(s *State, o Operands) error { return compareVV(s, o.A, o.B, le) }
func execSleVS(s *State, o Operands) error { return compareVS(s, o.A, o.B, le) }
