package vm

// vectorArithVV executes one of the *VV opcodes: op applied lane-by-lane to
// VRF[bIdx] and VRF[cIdx] under the masked template.
func vectorArithVV(s *State, dst, bIdx, cIdx int, op func(x, y int32) int32) error {
	v1, err := s.VRF.Read(bIdx)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(cIdx)
	if err != nil {
		return err
	}
	result := maskedTemplate(s, func(i int) int32 { return op(v1[i], v2[i]) })
	return s.VRF.Write(dst, result)
}

// vectorArithVS executes one of the *VS opcodes: op applied lane-by-lane to
// VRF[bIdx] and the scalar SRF[cIdx] broadcast to every lane.
func vectorArithVS(s *State, dst, bIdx, cIdx int, op func(x, y int32) int32) error {
	v1, err := s.VRF.Read(bIdx)
	if err != nil {
		return err
	}
	scalar, err := s.SRF.Read(cIdx)
	if err != nil {
		return err
	}
	result := maskedTemplate(s, func(i int) int32 { return op(v1[i], scalar) })
	return s.VRF.Write(dst, result)
}

func execAddVV(s *State, o Operands) error { return vectorArithVV(s, o.A, o.B, o.C, wrapAdd) }
func execAddVS(s *State, o Operands) error { return vectorArithVS(s, o.A, o.B, o.C, wrapAdd) }
func execSubVV(s *State, o Operands) error { return vectorArithVV(s, o.A, o.B, o.C, wrapSub) }
func execSubVS(s *State, o Operands) error { return vectorArithVS(s, o.A, o.B, o.C, wrapSub) }

func mul32(x, y int32) int32 { return x * y }

func execMulVV(s *State, o Operands) error { return vectorArithVV(s, o.A, o.B, o.C, mul32) }
func execMulVS(s *State, o Operands) error { return vectorArithVS(s, o.A, o.B, o.C, mul32) }

// vectorDiv implements DIVVV/DIVVS, which need per-lane divide-by-zero
// handling that the generic op-function templates above don't support.
func vectorDiv(s *State, dst int, v1 [MVL]int32, v2func func(i int) int32, pc int) error {
	var result [MVL]int32
	vl := int(s.VL.Get())
	var fault error
	for i := 0; i < vl; i++ {
		if !s.VM.Lane(i) {
			continue
		}
		divisor := v2func(i)
		if divisor == 0 {
			if fault == nil {
				fault = newDiag(KindArithmeticFault, pc, "division by zero at lane %d", i)
			}
			if s.Policy.DivByZero == DivAbort {
				break
			}
			continue
		}
		result[i] = floorDiv(v1[i], divisor)
	}
	if err := s.VRF.Write(dst, result); err != nil {
		return err
	}
	return fault
}

func execDivVV(s *State, o Operands, pc int) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	return vectorDiv(s, o.A, v1, func(i int) int32 { return v2[i] }, pc)
}

func execDivVS(s *State, o Operands, pc int) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	scalar, err := s.SRF.Read(o.C)
	if err != nil {
		return err
	}
	return vectorDiv(s, o.A, v1, func(int) int32 { return scalar }, pc)
}
