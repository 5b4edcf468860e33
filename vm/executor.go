package vm

// Step fetches and executes exactly one instruction at the current PC, then
// advances PC according to spec.md §4.E: branches add their immediate to PC
// *before* the universal PC+1 is applied, so a taken branch with immediate k
// nets PC += k+1. Step reports a non-nil error for any diagnostic raised
// along the way, but — except for HALT and the fatal "ran past IMEM"
// overrun — still advances PC and leaves the machine ready for the next
// Step.
//
// s.Halted is set once HALT has executed; the caller should stop calling
// Step. When PC has run past the end of IMEM without ever executing HALT,
// Step sets s.Halted and returns ErrProgramOverrun.
func (s *State) Step() (err error) {
	if s.Halted {
		return nil
	}

	tokens, ferr := s.IMEM.Fetch(s.PC)
	if ferr != nil {
		s.Halted = true
		return ErrProgramOverrun
	}

	if len(tokens) == 0 {
		s.PC++
		s.Cycles++
		return newDiag(KindInvalidOpcode, s.PC-1, "empty instruction")
	}

	mnemonic := tokens[0]

	if mnemonic == "HALT" {
		s.Halted = true
		return nil
	}

	if mnemonic == "CVM" {
		err = execCvm(s, Operands{})
		s.PC++
		s.Cycles++
		return err
	}

	operands, derr := Decode(tokens)
	if derr != nil {
		s.PC++
		s.Cycles++
		return derr
	}

	var branch branchResult
	var bErr error
	pc := s.PC

	switch mnemonic {
	case "ADDVV":
		err = execAddVV(s, operands)
	case "ADDVS":
		err = execAddVS(s, operands)
	case "SUBVV":
		err = execSubVV(s, operands)
	case "SUBVS":
		err = execSubVS(s, operands)
	case "MULVV":
		err = execMulVV(s, operands)
	case "MULVS":
		err = execMulVS(s, operands)
	case "DIVVV":
		err = execDivVV(s, operands, pc)
	case "DIVVS":
		err = execDivVS(s, operands, pc)

	case "SEQVV":
		err = execSeqVV(s, operands)
	case "SEQVS":
		err = execSeqVS(s, operands)
	case "SNEVV":
		err = execSneVV(s, operands)
	case "SNEVS":
		err = execSneVS(s, operands)
	case "SGTVV":
		err = execSgtVV(s, operands)
	case "SGTVS":
		err = execSgtVS(s, operands)
	case "SLTVV":
		err = execSltVV(s, operands)
	case "SLTVS":
		err = execSltVS(s, operands)
	case "SGEVV":
		err = execSgeVV(s, operands)
	case "SGEVS":
		err = execSgeVS(s, operands)
	case "SLEVV":
		err = execSleVV(s, operands)
	case "SLEVS":
		err = execSleVS(s, operands)

	case "POP":
		err = execPop(s, operands)

	case "MTCL":
		err = execMtcl(s, operands)
	case "MFCL":
		err = execMfcl(s, operands)

	case "LV":
		err = execLV(s, operands)
	case "SV":
		err = execSV(s, operands)
	case "LVWS":
		err = execLVWS(s, operands)
	case "SVWS":
		err = execSVWS(s, operands)
	case "LVI":
		err = execLVI(s, operands)
	case "SVI":
		err = execSVI(s, operands)
	case "LS":
		err = execLS(s, operands)
	case "SS":
		err = execSS(s, operands)

	case "ADD":
		err = execAdd(s, operands)
	case "SUB":
		err = execSub(s, operands)
	case "AND":
		err = execAnd(s, operands)
	case "OR":
		err = execOr(s, operands)
	case "XOR":
		err = execXor(s, operands)
	case "SLL":
		err = execSll(s, operands)
	case "SRL":
		err = execSrl(s, operands)
	case "SRA":
		err = execSra(s, operands)

	case "BEQ":
		branch, bErr = execBeq(s, operands)
	case "BNE":
		branch, bErr = execBne(s, operands)
	case "BGT":
		branch, bErr = execBgt(s, operands)
	case "BLT":
		branch, bErr = execBlt(s, operands)
	case "BGE":
		branch, bErr = execBge(s, operands)
	case "BLE":
		branch, bErr = execBle(s, operands)

	case "UNPACKLO":
		err = execUnpackLo(s, operands)
	case "UNPACKHI":
		err = execUnpackHi(s, operands)
	case "PACKLO":
		err = execPackLo(s, operands)
	case "PACKHI":
		err = execPackHi(s, operands)

	default:
		err = newDiag(KindInvalidOpcode, pc, "unrecognized mnemonic %q", mnemonic)
	}

	if bErr != nil {
		err = bErr
	}
	if branch.taken {
		s.PC += int(branch.delta)
	}

	s.PC++
	s.Cycles++
	return err
}

// Run steps the machine until HALT executes, the cycle budget is exhausted,
// or a program overrun is detected. diagnostics receives every non-nil error
// Step returns (best-effort: execution never stops early just because an
// instruction raised a diagnostic, except for overrun/cycle-limit).
func (s *State) Run(diagnostics func(error)) error {
	maxCycles := s.Policy.MaxCycles
	if maxCycles == 0 {
		maxCycles = DefaultMaxCycles
	}
	for !s.Halted {
		if s.Cycles >= maxCycles {
			return newDiag(KindInvalidAddress, s.PC, "exceeded maximum cycle count %d without HALT", maxCycles)
		}
		err := s.Step()
		if err != nil {
			if diagnostics != nil {
				diagnostics(err)
			}
			if err == ErrProgramOverrun {
				return err
			}
		}
	}
	return nil
}
