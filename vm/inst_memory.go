package vm

// InstMemory is the ordered sequence of already-tokenized instructions that
// make up a loaded program. Labels are not supported at this level; branch
// targets are numeric PC-relative immediates (see control.go).
type InstMemory struct {
	instructions [][]string
}

// NewInstMemory wraps an already-tokenized instruction stream. Programs
// longer than IMEMSize are truncated to IMEMSize.
func NewInstMemory(instructions [][]string) *InstMemory {
	if len(instructions) > IMEMSize {
		instructions = instructions[:IMEMSize]
	}
	return &InstMemory{instructions: instructions}
}

// Len returns the number of loaded instructions.
func (m *InstMemory) Len() int {
	return len(m.instructions)
}

// Fetch returns the tokens of the instruction at idx, or an InvalidAddress
// diagnostic when idx is out of range.
func (m *InstMemory) Fetch(idx int) ([]string, error) {
	if idx < 0 || idx >= len(m.instructions) {
		return nil, newDiag(KindInvalidAddress, idx, "invalid instruction fetch with memory size %d", len(m.instructions))
	}
	return m.instructions[idx], nil
}

// Tokenize splits a single source line on whitespace, discarding empty
// tokens produced by runs of spaces/tabs.
func Tokenize(line string) []string {
	var tokens []string
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}
