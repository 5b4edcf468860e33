package vm

// scalarOp applies op to SRF[o.B] and SRF[o.C], writing the result to
// SRF[o.A]. Used by ADD/SUB/AND/OR/XOR/SLL/SRL/SRA.
func scalarOp(s *State, o Operands, op func(a, b int32) int32) error {
	a, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	b, err := s.SRF.Read(o.C)
	if err != nil {
		return err
	}
	return s.SRF.Write(o.A, op(a, b))
}

func execAdd(s *State, o Operands) error { return scalarOp(s, o, wrapAdd) }
func execSub(s *State, o Operands) error { return scalarOp(s, o, wrapSub) }
func execAnd(s *State, o Operands) error { return scalarOp(s, o, func(a, b int32) int32 { return a & b }) }
func execOr(s *State, o Operands) error  { return scalarOp(s, o, func(a, b int32) int32 { return a | b }) }
func execXor(s *State, o Operands) error { return scalarOp(s, o, func(a, b int32) int32 { return a ^ b }) }

func execSll(s *State, o Operands) error {
	return scalarOp(s, o, func(a, b int32) int32 { return logicalShiftLeft(s.Policy, a, b) })
}
func execSrl(s *State, o Operands) error {
	return scalarOp(s, o, func(a, b int32) int32 { return logicalShiftRight(s.Policy, a, b) })
}
func execSra(s *State, o Operands) error {
	return scalarOp(s, o, func(a, b int32) int32 { return arithmeticShiftRight(s.Policy, a, b) })
}
