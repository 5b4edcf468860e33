package vm

// execCvm implements CVM ("clear vector mask" = set-all-ones): VM gets every
// one of its VectorMaskBits bits set.
func execCvm(s *State, _ Operands) error {
	s.VM.Set(^uint64(0) >> (64 - VectorMaskBits))
	return nil
}

// execPop implements POP dst: SRF[dst] receives the population count of VM.
// The count can never exceed VectorMaskBits (it is a popcount of a
// VectorMaskBits-wide value); the guard below documents that invariant
// rather than silently trusting it, matching the defensive check in
// original_source/skeleton.py's POP handler.
func execPop(s *State, o Operands) error {
	count := s.VM.PopCount()
	if count > VectorMaskBits {
		return newDiag(KindArithmeticFault, -1, "POP: population count %d exceeds mask width %d", count, VectorMaskBits)
	}
	return s.SRF.Write(o.A, int32(count))
}
