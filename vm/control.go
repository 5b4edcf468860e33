package vm

// branchResult is returned by the branch opcodes: it tells the interpreter
// how much extra displacement to add to PC before the universal PC+1 applies
// (spec.md §4.E's documented off-by-one: a taken branch with immediate k
// nets PC += k+1).
type branchResult struct {
	taken bool
	delta int32
}

func branchOp(s *State, o Operands, cmp func(a, b int32) bool) (branchResult, error) {
	a, err := s.SRF.Read(o.A)
	if err != nil {
		return branchResult{}, err
	}
	b, err := s.SRF.Read(o.B)
	if err != nil {
		return branchResult{}, err
	}
	if cmp(a, b) {
		return branchResult{taken: true, delta: o.Imm}, nil
	}
	return branchResult{}, nil
}

func execBeq(s *State, o Operands) (branchResult, error) { return branchOp(s, o, eq) }
func execBne(s *State, o Operands) (branchResult, error) { return branchOp(s, o, ne) }
func execBgt(s *State, o Operands) (branchResult, error) { return branchOp(s, o, gt) }
func execBlt(s *State, o Operands) (branchResult, error) { return branchOp(s, o, lt) }
func execBge(s *State, o Operands) (branchResult, error) { return branchOp(s, o, ge) }
func execBle(s *State, o Operands) (branchResult, error) { return branchOp(s, o, le) }
