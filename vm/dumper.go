package vm

import (
	"io"
	"strconv"
	"strings"
)

// writeTable writes a header row of lane indices (each column width chars
// wide, left-aligned), a dashes separator, then one row per register — the
// same layout original_source/skeleton.py's RegisterFile.dump produces,
// generalized over any register width (1 for SRF/VM/VL, MVL for VRF) and
// over the textual representation of a cell (VM's value doesn't fit in an
// int32, so rows are pre-formatted strings rather than numbers).
func writeTable(w io.Writer, width int, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	lanes := len(rows[0])

	var b strings.Builder
	for i := 0; i < lanes; i++ {
		b.WriteString(padLeft(strconv.Itoa(i), width))
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", width*lanes))
	b.WriteByte('\n')
	for _, row := range rows {
		for _, cell := range row {
			b.WriteString(padLeft(cell, width))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// DumpSRF writes the scalar register file as a table (8 rows, 1 column).
func (s *State) DumpSRF(w io.Writer, width int) error {
	regs := s.SRF.All()
	rows := make([][]string, len(regs))
	for i, v := range regs {
		rows[i] = []string{strconv.FormatInt(int64(v), 10)}
	}
	return writeTable(w, width, rows)
}

// DumpVRF writes the vector register file as a table (8 rows, MVL columns).
func (s *State) DumpVRF(w io.Writer, width int) error {
	regs := s.VRF.All()
	rows := make([][]string, len(regs))
	for i, v := range regs {
		row := make([]string, MVL)
		for j, word := range v {
			row[j] = strconv.FormatInt(int64(word), 10)
		}
		rows[i] = row
	}
	return writeTable(w, width, rows)
}

// DumpVM writes the vector mask register as a single-row, 1-column table,
// matching how original_source/skeleton.py models VM as a width-64,
// single-register RegisterFile. The value is the integer reading of the
// 64-bit mask, not a bitstring.
func (s *State) DumpVM(w io.Writer, width int) error {
	return writeTable(w, width, [][]string{{strconv.FormatUint(s.VM.Get(), 10)}})
}

// DumpVL writes the vector length register the same way.
func (s *State) DumpVL(w io.Writer, width int) error {
	return writeTable(w, width, [][]string{{strconv.FormatInt(int64(s.VL.Get()), 10)}})
}

// DumpMemory writes one word per line, in index order, for the full
// capacity of the memory (SDMEMOP.txt/VDMEMOP.txt per spec.md §6).
func DumpMemory(w io.Writer, m *WordMemory) error {
	var b strings.Builder
	for _, word := range m.Words() {
		b.WriteString(strconv.FormatInt(int64(word), 10))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
