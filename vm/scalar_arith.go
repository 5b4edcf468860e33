package vm

// Scalar arithmetic in this ISA is explicit 32-bit two's-complement: every
// result is the mathematical value reduced modulo 2^32 and reinterpreted as
// signed. Go's int32 arithmetic already wraps this way for +, -, and <<, so
// these helpers mostly exist to name the operations and to spell out the
// logical-vs-arithmetic shift distinction precisely (spec.md §4.E, §9).

func wrapAdd(a, b int32) int32 { return a + b }
func wrapSub(a, b int32) int32 { return a - b }

// shiftAmount normalizes a scalar shift count per Policy.MaskShiftAmount:
// masked mode reduces to the low 5 bits (0-31); unmasked mode reports
// amounts >= 32 via the saturated=true return so callers can apply the
// saturating behavior.
func shiftAmount(policy Policy, b int32) (amount uint32, saturated bool) {
	ub := uint32(b)
	if policy.MaskShiftAmount {
		return ub & 0x1F, false
	}
	if ub >= ScalarRegBits {
		return ub, true
	}
	return ub, false
}

// logicalShiftLeft implements SLL: logical left shift, truncated to 32 bits
// and reinterpreted as signed.
func logicalShiftLeft(policy Policy, a, b int32) int32 {
	amount, saturated := shiftAmount(policy, b)
	if saturated {
		return 0
	}
	return int32(uint32(a) << amount)
}

// logicalShiftRight implements SRL: reinterpret a as unsigned (a mod 2^32),
// then right-shift by b, then reinterpret the result as signed.
func logicalShiftRight(policy Policy, a, b int32) int32 {
	amount, saturated := shiftAmount(policy, b)
	if saturated {
		return 0
	}
	unsigned := uint32(a)
	return int32(unsigned >> amount)
}

// arithmeticShiftRight implements SRA: sign-extending right shift.
func arithmeticShiftRight(policy Policy, a, b int32) int32 {
	amount, saturated := shiftAmount(policy, b)
	if saturated {
		if a < 0 {
			return -1
		}
		return 0
	}
	return a >> amount
}

// floorDiv implements the truncated-toward-negative-infinity integer
// division DIVVV/DIVVS require, as opposed to Go's truncate-toward-zero `/`.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
