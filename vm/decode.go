package vm

import "strconv"

// Operands is the result of decoding one tokenized instruction. Not every
// field is meaningful for every shape: a 2-token instruction only sets A; a
// 3-token instruction sets A and B; a 4-token instruction sets A, B, and
// either C (register) or Imm (immediate), selected by HasImm.
type Operands struct {
	A      int
	B      int
	C      int
	Imm    int32
	HasImm bool
}

// isRegisterToken reports whether tok looks like a register reference (e.g.
// "SR3", "VR1") rather than a signed decimal immediate.
func isRegisterToken(tok string) bool {
	if tok == "" {
		return false
	}
	return tok[0] != '-' && (tok[0] < '0' || tok[0] > '9')
}

// parseRegisterIndex drops the two-character register-class prefix ("SR",
// "VR") and parses the remainder as a decimal index.
func parseRegisterIndex(tok string) (int, error) {
	if len(tok) < 3 {
		return 0, newDiag(KindInvalidOperands, -1, "malformed register operand %q", tok)
	}
	idx, err := strconv.Atoi(tok[2:])
	if err != nil {
		return 0, newDiag(KindInvalidOperands, -1, "malformed register operand %q", tok)
	}
	return idx, nil
}

// Decode splits a tokenized instruction (tokens[0] is the mnemonic) into its
// operand shape per spec.md §4.D. Reports InvalidOperands for any token
// count other than 2, 3, or 4 (tokens including the mnemonic), or for a
// register token that fails to parse.
func Decode(tokens []string) (Operands, error) {
	switch len(tokens) {
	case 4:
		a, err := parseRegisterIndex(tokens[1])
		if err != nil {
			return Operands{}, err
		}
		b, err := parseRegisterIndex(tokens[2])
		if err != nil {
			return Operands{}, err
		}
		third := tokens[3]
		if isRegisterToken(third) {
			c, err := parseRegisterIndex(third)
			if err != nil {
				return Operands{}, err
			}
			return Operands{A: a, B: b, C: c}, nil
		}
		imm, err := strconv.Atoi(third)
		if err != nil {
			return Operands{}, newDiag(KindInvalidOperands, -1, "malformed immediate operand %q", third)
		}
		return Operands{A: a, B: b, Imm: int32(imm), HasImm: true}, nil

	case 3:
		a, err := parseRegisterIndex(tokens[1])
		if err != nil {
			return Operands{}, err
		}
		b, err := parseRegisterIndex(tokens[2])
		if err != nil {
			return Operands{}, err
		}
		return Operands{A: a, B: b}, nil

	case 2:
		a, err := parseRegisterIndex(tokens[1])
		if err != nil {
			return Operands{}, err
		}
		return Operands{A: a}, nil

	default:
		return Operands{}, newDiag(KindInvalidOperands, -1, "instruction %v has unsupported arity %d", tokens, len(tokens))
	}
}
