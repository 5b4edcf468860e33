package inspector

import (
	"testing"

	"github.com/rugvedmhatre/Vector-Simulator/vm"
)

func TestStepAdvancesState(t *testing.T) {
	state := vm.NewState([][]string{
		{"ADD", "SR1", "SR1", "SR1"},
		{"HALT"},
	}, vm.DefaultPolicy())
	insp := New(state)

	insp.step()
	if state.PC != 1 {
		t.Errorf("PC = %d, want 1", state.PC)
	}
	if state.Halted {
		t.Error("did not expect halted after one step")
	}

	insp.step()
	if !state.Halted {
		t.Error("expected halted after stepping past HALT")
	}
}

func TestContinueToHaltRunsUntilHalted(t *testing.T) {
	state := vm.NewState([][]string{
		{"ADD", "SR1", "SR1", "SR1"},
		{"ADD", "SR1", "SR1", "SR1"},
		{"HALT"},
	}, vm.DefaultPolicy())
	insp := New(state)

	insp.continueToHalt()
	if !state.Halted {
		t.Error("expected halted after continueToHalt")
	}
}

func TestStepOnHaltedMachineIsNoOp(t *testing.T) {
	state := vm.NewState([][]string{{"HALT"}}, vm.DefaultPolicy())
	insp := New(state)

	insp.step()
	if state.PC != 0 {
		t.Errorf("PC = %d, want 0 once halted", state.PC)
	}
	insp.step()
	if state.PC != 0 {
		t.Errorf("PC = %d, want still 0 after stepping a halted machine", state.PC)
	}
}
