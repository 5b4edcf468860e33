package vm

// execUnpackLo implements UNPACKLO d, a, b: interleave the low half
// (i in [0, V/2)) of VRF[a] and VRF[b] into destination positions 2i, 2i+1.
func execUnpackLo(s *State, o Operands) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	var result [MVL]int32
	v := int(s.VL.Get())
	for i := 0; i < v/2; i++ {
		result[2*i] = v1[i]
		result[2*i+1] = v2[i]
	}
	return s.VRF.Write(o.A, result)
}

// execUnpackHi implements UNPACKHI d, a, b: interleave the high half
// (i in [V/2, V)) of VRF[a] and VRF[b] into destination positions
// 2(i-V/2), 2(i-V/2)+1.
func execUnpackHi(s *State, o Operands) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	var result [MVL]int32
	v := int(s.VL.Get())
	j := 0
	for i := v / 2; i < v; i++ {
		result[j] = v1[i]
		result[j+1] = v2[i]
		j += 2
	}
	return s.VRF.Write(o.A, result)
}

// execPackLo implements PACKLO d, a, b: take even-indexed lanes of VRF[a]
// into the low half of the destination and of VRF[b] into the high half.
func execPackLo(s *State, o Operands) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	var result [MVL]int32
	v := int(s.VL.Get())
	half := v / 2
	j := 0
	for i := 0; i < v; i += 2 {
		result[j] = v1[i]
		result[half+j] = v2[i]
		j++
	}
	return s.VRF.Write(o.A, result)
}

// execPackHi implements PACKHI d, a, b: take odd-indexed lanes of VRF[a]
// into the low half of the destination and of VRF[b] into the high half.
func execPackHi(s *State, o Operands) error {
	v1, err := s.VRF.Read(o.B)
	if err != nil {
		return err
	}
	v2, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	var result [MVL]int32
	v := int(s.VL.Get())
	half := v / 2
	j := 0
	for i := 1; i < v; i += 2 {
		result[j] = v1[i]
		result[half+j] = v2[i]
		j++
	}
	return s.VRF.Write(o.A, result)
}
