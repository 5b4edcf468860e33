package vm

// Register file and memory sizing constants for the vector datapath.
const (
	// MVL is the Maximum Vector Length: the number of 32-bit lanes in every
	// vector register.
	MVL = 64

	// ScalarRegisterCount and VectorRegisterCount are the sizes of SRF/VRF.
	ScalarRegisterCount = 8
	VectorRegisterCount = 8

	// SDMEMSize and VDMEMSize are word counts, not byte counts.
	SDMEMSize = 1 << 13 // 2^13 words
	VDMEMSize = 1 << 17 // 2^17 words

	// IMEMSize is the maximum number of tokenized instructions held by IMEM.
	IMEMSize = 1 << 16

	// ScalarRegBits and VectorMaskBits give the width used for wraparound and
	// bitstring formatting of SRF words and the VM register respectively.
	ScalarRegBits  = 32
	VectorMaskBits = 64
)

// Execution limits and dump formatting defaults.
const (
	// DefaultMaxCycles bounds runaway programs that never reach HALT; it is
	// overridable via config.Config.Execution.MaxCycles.
	DefaultMaxCycles = 1000000

	// DefaultLogCapacity is not read anywhere in this module; the
	// interpreter keeps no instruction history.
	DefaultLogCapacity = 1000

	// DefaultColumnWidth is the left-aligned column width used by the
	// SRF/VRF/VM/VL table dumper.
	DefaultColumnWidth = 13
)
