// Package loader reads a program's I/O directory into a vm.State and writes
// the post-run dumps back out, mirroring the file layout and diagnostic
// messages original_source/skeleton.py's IMEM/DMEM/RegisterFile classes
// print on load and dump.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rugvedmhatre/Vector-Simulator/vm"
)

// Result reports the outcome of loading or dumping one file: whether it was
// found/written and, if not, the error that was swallowed (input files
// default to all-zero memory rather than aborting the run).
type Result struct {
	Path  string
	Found bool
	Err   error
}

// AllFound reports whether every Result in results succeeded. The CLI uses
// this to decide its exit code: per spec.md's "non-zero if any file open
// fails" contract, a swallowed per-file error must still surface as process
// failure even though loading/dumping itself keeps going.
func AllFound(results []Result) bool {
	for _, r := range results {
		if !r.Found {
			return false
		}
	}
	return true
}

// Load reads Code.asm, SDMEM.txt, and VDMEM.txt from iodir and returns a
// freshly built vm.State plus one Result per file, in that order. A missing
// or malformed data file is not fatal: SDMEM/VDMEM simply start zeroed.
func Load(iodir string, policy vm.Policy) (*vm.State, []Result, error) {
	codePath := filepath.Join(iodir, "Code.asm")
	instructions, err := loadCode(codePath)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}

	state := vm.NewState(instructions, policy)
	results := []Result{{Path: codePath, Found: true}}

	sdmemPath := filepath.Join(iodir, "SDMEM.txt")
	results = append(results, loadWords(sdmemPath, state.SDMEM))

	vdmemPath := filepath.Join(iodir, "VDMEM.txt")
	results = append(results, loadWords(vdmemPath, state.VDMEM))

	return state, results, nil
}

// loadCode reads and tokenizes every line of Code.asm. Unlike SDMEM/VDMEM,
// a missing program is fatal — there is nothing to run.
func loadCode(path string) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied I/O directory
	if err != nil {
		return nil, fmt.Errorf("couldn't open instruction file %s: %w", path, err)
	}
	defer f.Close()

	var instructions [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		instructions = append(instructions, vm.Tokenize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading instruction file %s: %w", path, err)
	}
	return instructions, nil
}

// loadWords reads one signed decimal integer per line into the leading words
// of mem; when the file is shorter than capacity, the remaining tail keeps
// its existing (zero) contents. A missing file leaves mem zeroed, matching skeleton.py's DMEM
// fallback.
func loadWords(path string, mem *vm.WordMemory) Result {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied I/O directory
	if err != nil {
		return Result{Path: path, Found: false, Err: err}
	}
	defer f.Close()

	var values []int32
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return Result{Path: path, Found: false, Err: fmt.Errorf("malformed word %q: %w", line, err)}
		}
		values = append(values, int32(n))
	}
	if err := scanner.Err(); err != nil {
		return Result{Path: path, Found: false, Err: err}
	}

	mem.LoadImage(values)
	return Result{Path: path, Found: true}
}

// Dump writes every output file:
// SDMEMOP.txt, VDMEMOP.txt, SRF.txt, VRF.txt, VM.txt, VL.txt, all under
// iodir. Each file is attempted independently so one failure doesn't
// prevent the others from being written, matching skeleton.py's
// best-effort dump behavior.
func Dump(iodir string, s *vm.State, columnWidth int) []Result {
	var results []Result

	results = append(results, dumpMemory(filepath.Join(iodir, "SDMEMOP.txt"), s.SDMEM))
	results = append(results, dumpMemory(filepath.Join(iodir, "VDMEMOP.txt"), s.VDMEM))
	results = append(results, dumpTable(filepath.Join(iodir, "SRF.txt"), func(w *os.File) error { return s.DumpSRF(w, columnWidth) }))
	results = append(results, dumpTable(filepath.Join(iodir, "VRF.txt"), func(w *os.File) error { return s.DumpVRF(w, columnWidth) }))
	results = append(results, dumpTable(filepath.Join(iodir, "VM.txt"), func(w *os.File) error { return s.DumpVM(w, columnWidth) }))
	results = append(results, dumpTable(filepath.Join(iodir, "VL.txt"), func(w *os.File) error { return s.DumpVL(w, columnWidth) }))

	return results
}

func dumpMemory(path string, mem *vm.WordMemory) Result {
	f, err := os.Create(path) // #nosec G304 -- operator-supplied I/O directory
	if err != nil {
		return Result{Path: path, Found: false, Err: err}
	}
	defer f.Close()

	if err := vm.DumpMemory(f, mem); err != nil {
		return Result{Path: path, Found: false, Err: err}
	}
	return Result{Path: path, Found: true}
}

func dumpTable(path string, write func(*os.File) error) Result {
	f, err := os.Create(path) // #nosec G304 -- operator-supplied I/O directory
	if err != nil {
		return Result{Path: path, Found: false, Err: err}
	}
	defer f.Close()

	if err := write(f); err != nil {
		return Result{Path: path, Found: false, Err: err}
	}
	return Result{Path: path, Found: true}
}
