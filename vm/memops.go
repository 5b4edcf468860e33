package vm

// execLV implements LV vd, sa: VRF[vd][i] <- VDMEM[SRF[sa]+i] for i in
// [0, VL), unmasked by VM, lanes >= VL zeroed.
func execLV(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	var loadErr error
	result := unmaskedTemplate(s, func(i int) int32 {
		word, err := s.VDMEM.Read(int(base) + i)
		if err != nil && loadErr == nil {
			loadErr = err
		}
		return word
	})
	if err := s.VRF.Write(o.A, result); err != nil {
		return err
	}
	return loadErr
}

// execSV implements SV vd, sa: VDMEM[SRF[sa]+i] <- VRF[vd][i] for i in
// [0, VL).
func execSV(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	vec, err := s.VRF.Read(o.A)
	if err != nil {
		return err
	}
	vl := int(s.VL.Get())
	for i := 0; i < vl; i++ {
		if err := s.VDMEM.Write(int(base)+i, vec[i]); err != nil {
			return err
		}
	}
	return nil
}

// execLVWS implements LVWS vd, sa, sb: strided load, address
// SRF[sa] + i*SRF[sb].
func execLVWS(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	stride, err := s.SRF.Read(o.C)
	if err != nil {
		return err
	}
	var loadErr error
	result := unmaskedTemplate(s, func(i int) int32 {
		word, err := s.VDMEM.Read(int(base) + i*int(stride))
		if err != nil && loadErr == nil {
			loadErr = err
		}
		return word
	})
	if err := s.VRF.Write(o.A, result); err != nil {
		return err
	}
	return loadErr
}

// execSVWS implements SVWS vd, sa, sb: strided store.
func execSVWS(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	stride, err := s.SRF.Read(o.C)
	if err != nil {
		return err
	}
	vec, err := s.VRF.Read(o.A)
	if err != nil {
		return err
	}
	vl := int(s.VL.Get())
	for i := 0; i < vl; i++ {
		if err := s.VDMEM.Write(int(base)+i*int(stride), vec[i]); err != nil {
			return err
		}
	}
	return nil
}

// execLVI implements LVI vd, sa, vb: gather load, address
// SRF[sa] + VRF[vb][i].
func execLVI(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	offsets, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	var loadErr error
	result := unmaskedTemplate(s, func(i int) int32 {
		word, err := s.VDMEM.Read(int(base) + int(offsets[i]))
		if err != nil && loadErr == nil {
			loadErr = err
		}
		return word
	})
	if err := s.VRF.Write(o.A, result); err != nil {
		return err
	}
	return loadErr
}

// execSVI implements SVI vd, sa, vb: scatter store.
func execSVI(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	offsets, err := s.VRF.Read(o.C)
	if err != nil {
		return err
	}
	vec, err := s.VRF.Read(o.A)
	if err != nil {
		return err
	}
	vl := int(s.VL.Get())
	for i := 0; i < vl; i++ {
		if err := s.VDMEM.Write(int(base)+int(offsets[i]), vec[i]); err != nil {
			return err
		}
	}
	return nil
}

// execLS implements LS sd, sa, imm: SRF[sd] <- SDMEM[SRF[sa]+imm].
func execLS(s *State, o Operands) error {
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	word, err := s.SDMEM.Read(int(base) + int(o.Imm))
	if err != nil {
		return err
	}
	return s.SRF.Write(o.A, word)
}

// execSS implements SS sd, sa, imm: SDMEM[SRF[sa]+imm] <- SRF[sd]. Despite
// the mnemonic, "sd" here names the *source* of the stored value and "sa"
// the base-address register — this non-obvious operand role is exactly as
// spec.md §9 documents it.
func execSS(s *State, o Operands) error {
	value, err := s.SRF.Read(o.A)
	if err != nil {
		return err
	}
	base, err := s.SRF.Read(o.B)
	if err != nil {
		return err
	}
	return s.SDMEM.Write(int(base)+int(o.Imm), value)
}
