package vm

// DivByZeroPolicy selects the behavior of DIVVV/DIVVS when a lane's divisor
// is zero (spec.md §9 open question).
type DivByZeroPolicy int

const (
	// DivSkip leaves the faulting lane at its pre-initialized zero value and
	// reports the fault, continuing with the remaining lanes.
	DivSkip DivByZeroPolicy = iota
	// DivAbort stops applying further lanes of the instruction once a fault
	// hits; lanes already computed (and the zero pre-initialization) stand.
	DivAbort
)

// Policy bundles the runtime-configurable behaviors the interpreter needs.
// It is populated from config.Config by the CLI. The zero value skips on
// divide-by-zero but does not mask shift amounts; DefaultPolicy returns the
// defaults with masking enabled.
type Policy struct {
	DivByZero       DivByZeroPolicy
	MaskShiftAmount bool
	MaxCycles       uint64
}

// DefaultPolicy returns the spec-recommended defaults.
func DefaultPolicy() Policy {
	return Policy{
		DivByZero:       DivSkip,
		MaskShiftAmount: true,
		MaxCycles:       DefaultMaxCycles,
	}
}

// State is the complete architectural state of the machine: the two
// register files, the two special registers, the two data memories, the
// instruction memory, and the program counter. The interpreter (Step/Run)
// is the only thing that mutates it; the dumper only reads it.
type State struct {
	SRF ScalarRegisterFile
	VRF VectorRegisterFile
	VM  MaskRegister
	VL  LengthRegister

	SDMEM *WordMemory
	VDMEM *WordMemory
	IMEM  *InstMemory

	PC int

	Halted bool

	Policy Policy

	// Cycles counts retired instructions, checked against Policy.MaxCycles
	// to catch runaway programs that never reach HALT.
	Cycles uint64
}

// NewState builds a machine with zero-filled SDMEM/VDMEM/registers, VL
// initialized to MVL, and the given program loaded into IMEM.
func NewState(instructions [][]string, policy Policy) *State {
	s := &State{
		SDMEM:  NewWordMemory("SDMEM", SDMEMSize),
		VDMEM:  NewWordMemory("VDMEM", VDMEMSize),
		IMEM:   NewInstMemory(instructions),
		Policy: policy,
	}
	s.VL.value = MVL
	return s
}
