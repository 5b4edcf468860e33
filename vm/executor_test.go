package vm

import "testing"

func newTestState(instructions [][]string) *State {
	return NewState(instructions, DefaultPolicy())
}

// TestScalarAddWrap locks in scenario 1: 2147483647 + 1 wraps to the
// minimum signed 32-bit value.
func TestScalarAddWrap(t *testing.T) {
	s := newTestState([][]string{{"ADD", "SR3", "SR1", "SR2"}, {"HALT"}})
	s.SRF.Write(1, 2147483647)
	s.SRF.Write(2, 1)

	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	got, _ := s.SRF.Read(3)
	if got != -2147483648 {
		t.Errorf("SRF[3] = %d, want -2147483648", got)
	}
}

// TestVLBoundedAdd locks in scenario 2: ADDVV only touches the first VL
// lanes; the rest stay zero.
func TestVLBoundedAdd(t *testing.T) {
	s := newTestState([][]string{{"CVM"}, {"ADDVV", "VR3", "VR1", "VR2"}, {"HALT"}})
	s.VL.Set(4)
	v1 := [MVL]int32{1, 2, 3, 4, 5}
	v2 := [MVL]int32{10, 20, 30, 40, 50}
	s.VRF.Write(1, v1)
	s.VRF.Write(2, v2)

	if err := s.Step(); err != nil {
		t.Fatalf("CVM: %v", err)
	}
	if err := s.Step(); err != nil {
		t.Fatalf("ADDVV: %v", err)
	}

	result, _ := s.VRF.Read(3)
	want := [MVL]int32{11, 22, 33, 44}
	for i := 0; i < MVL; i++ {
		if result[i] != want[i] {
			t.Errorf("VR3[%d] = %d, want %d", i, result[i], want[i])
		}
	}
}

// TestMaskedSubtract locks in scenario 3: SLTVS produces the comparison
// mask, and a masked-off lane of SUBVV comes out zero (merge-with-zero,
// invariant P2), not the pre-existing destination value.
func TestMaskedSubtract(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(4)
	s.VRF.Write(1, [MVL]int32{-1, 0, 1, 2})
	s.SRF.Write(0, 1)

	if err := execSltVS(s, Operands{A: 1, B: 0}); err != nil {
		t.Fatalf("SLTVS: %v", err)
	}

	wantBits := uint64(0b1100) << (VectorMaskBits - 4)
	if s.VM.Get() != wantBits {
		t.Errorf("VM = %064b, want %064b", s.VM.Get(), wantBits)
	}

	if err := execSubVV(s, Operands{A: 2, B: 1, C: 1}); err != nil {
		t.Fatalf("SUBVV: %v", err)
	}
	result, _ := s.VRF.Read(2)
	for i := 0; i < 4; i++ {
		if result[i] != 0 {
			t.Errorf("VR2[%d] = %d, want 0", i, result[i])
		}
	}
}

// TestStridedLoad locks in scenario 4.
func TestStridedLoad(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(4)
	s.SRF.Write(1, 0)
	s.SRF.Write(2, 2)
	s.VDMEM.LoadImage([]int32{5, 9, 6, 9, 7, 9, 8, 9})

	if err := execLVWS(s, Operands{A: 1, B: 1, C: 2}); err != nil {
		t.Fatalf("LVWS: %v", err)
	}
	result, _ := s.VRF.Read(1)
	want := [4]int32{5, 6, 7, 8}
	for i, w := range want {
		if result[i] != w {
			t.Errorf("VR1[%d] = %d, want %d", i, result[i], w)
		}
	}
}

// TestGather locks in scenario 5.
func TestGather(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(4)
	s.SRF.Write(1, 100)
	s.VRF.Write(2, [MVL]int32{3, 1, 4, 1})
	s.VDMEM.LoadImage(append(make([]int32, 100), 0, 10, 20, 30, 40))

	if err := execLVI(s, Operands{A: 3, B: 1, C: 2}); err != nil {
		t.Fatalf("LVI: %v", err)
	}
	result, _ := s.VRF.Read(3)
	want := [4]int32{30, 10, 40, 10}
	for i, w := range want {
		if result[i] != w {
			t.Errorf("VR3[%d] = %d, want %d", i, result[i], w)
		}
	}
}

// TestBranchPCQuirk locks in scenario 6: a taken branch with immediate k
// nets PC += k+1, not PC += k.
func TestBranchPCQuirk(t *testing.T) {
	s := newTestState([][]string{
		{"NOP"}, {"NOP"}, {"NOP"}, {"NOP"}, {"NOP"},
		{"BEQ", "SR1", "SR2", "3"},
		{"NOP"}, {"NOP"}, {"NOP"}, {"NOP"},
	})
	s.PC = 5
	s.Step()

	if s.PC != 9 {
		t.Errorf("PC = %d, want 9", s.PC)
	}
}

// TestUnpackLo locks in scenario 7.
func TestUnpackLo(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(4)
	s.VRF.Write(1, [MVL]int32{1, 2, 3, 4})
	s.VRF.Write(2, [MVL]int32{10, 20, 30, 40})

	if err := execUnpackLo(s, Operands{A: 3, B: 1, C: 2}); err != nil {
		t.Fatalf("UNPACKLO: %v", err)
	}
	result, _ := s.VRF.Read(3)
	want := [MVL]int32{1, 10, 2, 20}
	for i := 0; i < MVL; i++ {
		if result[i] != want[i] {
			t.Errorf("VR3[%d] = %d, want %d", i, result[i], want[i])
		}
	}
}

// TestPackLo locks in scenario 8.
func TestPackLo(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(4)
	s.VRF.Write(1, [MVL]int32{1, 2, 3, 4})
	s.VRF.Write(2, [MVL]int32{10, 20, 30, 40})

	if err := execPackLo(s, Operands{A: 3, B: 1, C: 2}); err != nil {
		t.Fatalf("PACKLO: %v", err)
	}
	result, _ := s.VRF.Read(3)
	want := [MVL]int32{1, 3, 10, 30}
	for i := 0; i < MVL; i++ {
		if result[i] != want[i] {
			t.Errorf("VR3[%d] = %d, want %d", i, result[i], want[i])
		}
	}
}

// TestCvmThenPop locks in invariant P5: CVM followed by POP stores exactly
// MVL into the destination register.
func TestCvmThenPop(t *testing.T) {
	s := newTestState(nil)
	if err := execCvm(s, Operands{}); err != nil {
		t.Fatalf("CVM: %v", err)
	}
	if err := execPop(s, Operands{A: 0}); err != nil {
		t.Fatalf("POP: %v", err)
	}
	got, _ := s.SRF.Read(0)
	if got != MVL {
		t.Errorf("SRF[0] = %d, want %d", got, MVL)
	}
}

// TestMfclMtclIdentity locks in invariant P6.
func TestMfclMtclIdentity(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(17)

	if err := execMfcl(s, Operands{A: 0}); err != nil {
		t.Fatalf("MFCL: %v", err)
	}
	s.VL.Set(0)
	if err := execMtcl(s, Operands{A: 0}); err != nil {
		t.Fatalf("MTCL: %v", err)
	}
	if s.VL.Get() != 17 {
		t.Errorf("VL = %d, want 17", s.VL.Get())
	}
}

// TestMtclRejectsOversizedVL locks in invariant I2.
func TestMtclRejectsOversizedVL(t *testing.T) {
	s := newTestState(nil)
	s.SRF.Write(0, MVL+1)

	err := execMtcl(s, Operands{A: 0})
	if err == nil {
		t.Fatal("expected InvalidVL diagnostic, got nil")
	}
	if s.VL.Get() != MVL {
		t.Errorf("VL = %d, want unchanged %d", s.VL.Get(), MVL)
	}
}

// TestDivByZeroSkip verifies the default div_by_zero policy: the faulting
// lane is left at zero and a diagnostic is reported, but remaining lanes
// still compute.
func TestDivByZeroSkip(t *testing.T) {
	s := newTestState(nil)
	s.VL.Set(2)
	if err := execCvm(s, Operands{}); err != nil {
		t.Fatalf("CVM: %v", err)
	}
	s.VRF.Write(1, [MVL]int32{10, 20})
	s.VRF.Write(2, [MVL]int32{0, 4})

	err := execDivVV(s, Operands{A: 3, B: 1, C: 2}, 0)
	if err == nil {
		t.Fatal("expected ArithmeticFault diagnostic, got nil")
	}
	result, _ := s.VRF.Read(3)
	if result[0] != 0 {
		t.Errorf("VR3[0] = %d, want 0", result[0])
	}
	if result[1] != 5 {
		t.Errorf("VR3[1] = %d, want 5", result[1])
	}
}

// TestFloorDivision verifies DIVVV truncates toward negative infinity, not
// toward zero.
func TestFloorDivision(t *testing.T) {
	if got := floorDiv(-7, 2); got != -4 {
		t.Errorf("floorDiv(-7, 2) = %d, want -4", got)
	}
	if got := floorDiv(7, 2); got != 3 {
		t.Errorf("floorDiv(7, 2) = %d, want 3", got)
	}
	if got := floorDiv(-7, -2); got != 3 {
		t.Errorf("floorDiv(-7, -2) = %d, want 3", got)
	}
}

// TestShiftRightDistinguishesLogicalAndArithmetic locks in the SRL/SRA
// distinction for a negative operand.
func TestShiftRightDistinguishesLogicalAndArithmetic(t *testing.T) {
	policy := DefaultPolicy()
	a := int32(-8) // 0xFFFFFFF8

	if got := arithmeticShiftRight(policy, a, 1); got != -4 {
		t.Errorf("SRA(-8, 1) = %d, want -4", got)
	}
	if got := logicalShiftRight(policy, a, 1); got != 0x7FFFFFFC {
		t.Errorf("SRL(-8, 1) = %d, want %d", got, int32(0x7FFFFFFC))
	}
}

// TestSSOperandOrder locks in the non-obvious SS role swap: the first
// token is the value source, the second is the base-address register.
func TestSSOperandOrder(t *testing.T) {
	s := newTestState(nil)
	s.SRF.Write(1, 42)
	s.SRF.Write(2, 100)

	if err := execSS(s, Operands{A: 1, B: 2, Imm: 5}); err != nil {
		t.Fatalf("SS: %v", err)
	}
	got, err := s.SDMEM.Read(105)
	if err != nil {
		t.Fatalf("SDMEM.Read: %v", err)
	}
	if got != 42 {
		t.Errorf("SDMEM[105] = %d, want 42", got)
	}
}

// TestHaltStopsExecution verifies Run halts exactly at HALT without
// treating it as a program overrun.
func TestHaltStopsExecution(t *testing.T) {
	s := newTestState([][]string{{"HALT"}})
	if err := s.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.Halted {
		t.Error("expected machine to be halted")
	}
}

// TestProgramOverrunIsFatal verifies running off the end of IMEM without
// HALT surfaces ErrProgramOverrun.
func TestProgramOverrunIsFatal(t *testing.T) {
	s := newTestState([][]string{{"ADD", "SR1", "SR1", "SR1"}})
	err := s.Run(nil)
	if err != ErrProgramOverrun {
		t.Fatalf("Run error = %v, want ErrProgramOverrun", err)
	}
}
