package vm

// execMtcl implements MTCL srf_idx: VL <- SRF[srf_idx] when that value is
// within [0, MVL]; otherwise VL is left unchanged and an InvalidVL
// diagnostic is reported.
func execMtcl(s *State, o Operands) error {
	value, err := s.SRF.Read(o.A)
	if err != nil {
		return err
	}
	return s.VL.Set(value)
}

// execMfcl implements MFCL srf_idx: SRF[srf_idx] <- VL.
func execMfcl(s *State, o Operands) error {
	return s.SRF.Write(o.A, s.VL.Get())
}
