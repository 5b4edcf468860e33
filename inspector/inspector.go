// Package inspector provides a terminal UI for single-stepping a running
// simulator, scaled down from debugger/tui.go's panel layout to the four
// views a vector machine's architectural state actually needs: scalar
// registers, vector registers, memory, and the program listing.
package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rugvedmhatre/Vector-Simulator/vm"
)

// Inspector is the text user interface wrapped around a running vm.State.
type Inspector struct {
	State *vm.State

	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex

	RegisterView *tview.TextView
	VectorView   *tview.TextView
	MemoryView   *tview.TextView
	ProgramView  *tview.TextView
	StatusView   *tview.TextView

	// MemoryBase is the VDMEM address the memory panel starts displaying
	// from; 'j'/'k' nudge it, mirroring the teacher's scrollable memory view.
	MemoryBase int

	lastErr error
}

// New builds an Inspector over state, ready to Run once started.
func New(state *vm.State) *Inspector {
	insp := &Inspector{
		State: state,
		App:   tview.NewApplication(),
	}
	insp.initializeViews()
	insp.buildLayout()
	insp.setupKeyBindings()
	insp.RefreshAll()
	return insp
}

func (insp *Inspector) initializeViews() {
	insp.RegisterView = tview.NewTextView().SetDynamicColors(true).SetScrollable(false)
	insp.RegisterView.SetBorder(true).SetTitle(" Scalar Registers / VM / VL ")

	insp.VectorView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.VectorView.SetBorder(true).SetTitle(" Vector Registers ")

	insp.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.MemoryView.SetBorder(true).SetTitle(" VDMEM ")

	insp.ProgramView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.ProgramView.SetBorder(true).SetTitle(" Program ")

	insp.StatusView = tview.NewTextView().SetDynamicColors(true)
	insp.StatusView.SetBorder(true).SetTitle(" Status (n/Enter step, c continue, q quit) ")
}

func (insp *Inspector) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.ProgramView, 0, 1, false).
		AddItem(insp.RegisterView, 0, 1, false)

	bottom := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.VectorView, 0, 1, false).
		AddItem(insp.MemoryView, 0, 1, false)

	insp.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 2, false).
		AddItem(bottom, 0, 2, false).
		AddItem(insp.StatusView, 3, 0, false)

	insp.Pages = tview.NewPages().AddPage("main", insp.MainLayout, true, true)
	insp.App.SetRoot(insp.Pages, true)
}

func (insp *Inspector) setupKeyBindings() {
	insp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			insp.step()
			return nil
		case 'c':
			insp.continueToHalt()
			return nil
		case 'q':
			insp.App.Stop()
			return nil
		case 'j':
			insp.MemoryBase += vm.MVL
			insp.RefreshAll()
			return nil
		case 'k':
			if insp.MemoryBase >= vm.MVL {
				insp.MemoryBase -= vm.MVL
			}
			insp.RefreshAll()
			return nil
		}
		switch event.Key() {
		case tcell.KeyEnter:
			insp.step()
			return nil
		case tcell.KeyCtrlC:
			insp.App.Stop()
			return nil
		}
		return event
	})
}

func (insp *Inspector) step() {
	if insp.State.Halted {
		return
	}
	insp.lastErr = insp.State.Step()
	insp.RefreshAll()
}

func (insp *Inspector) continueToHalt() {
	for !insp.State.Halted {
		if err := insp.State.Step(); err != nil {
			insp.lastErr = err
			if err == vm.ErrProgramOverrun {
				break
			}
		}
	}
	insp.RefreshAll()
}

// Run starts the event loop. It blocks until the user quits.
func (insp *Inspector) Run() error {
	return insp.App.Run()
}

// RefreshAll redraws every panel from the current machine state.
func (insp *Inspector) RefreshAll() {
	insp.updateRegisterView()
	insp.updateVectorView()
	insp.updateMemoryView()
	insp.updateProgramView()
	insp.updateStatusView()
	insp.App.Draw()
}

func (insp *Inspector) updateRegisterView() {
	var b strings.Builder
	regs := insp.State.SRF.All()
	for i, v := range regs {
		fmt.Fprintf(&b, "SR%d: %-12d", i, v)
		if i%2 == 1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "\nVL: %d    VM: %0*b\n", insp.State.VL.Get(), vm.VectorMaskBits, insp.State.VM.Get())
	fmt.Fprintf(&b, "PC: %d\n", insp.State.PC)
	insp.RegisterView.SetText(b.String())
}

func (insp *Inspector) updateVectorView() {
	var b strings.Builder
	vl := int(insp.State.VL.Get())
	regs := insp.State.VRF.All()
	for i, v := range regs {
		fmt.Fprintf(&b, "VR%d:", i)
		for lane := 0; lane < vl && lane < vm.MVL; lane++ {
			fmt.Fprintf(&b, " %d", v[lane])
		}
		b.WriteByte('\n')
	}
	insp.VectorView.SetText(b.String())
}

func (insp *Inspector) updateMemoryView() {
	var b strings.Builder
	for i := 0; i < vm.MVL; i++ {
		addr := insp.MemoryBase + i
		word, err := insp.State.VDMEM.Read(addr)
		if err != nil {
			break
		}
		fmt.Fprintf(&b, "%6d: %d\n", addr, word)
	}
	insp.MemoryView.SetText(b.String())
}

func (insp *Inspector) updateProgramView() {
	var b strings.Builder
	pc := insp.State.PC
	start := pc - 5
	if start < 0 {
		start = 0
	}
	for addr := start; addr < pc+10; addr++ {
		tokens, err := insp.State.IMEM.Fetch(addr)
		if err != nil {
			break
		}
		marker := "  "
		if addr == pc {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%5d: %s\n", marker, addr, strings.Join(tokens, " "))
	}
	insp.ProgramView.SetText(b.String())
}

func (insp *Inspector) updateStatusView() {
	switch {
	case insp.State.Halted:
		insp.StatusView.SetText("[green]halted[white]")
	case insp.lastErr != nil:
		insp.StatusView.SetText(fmt.Sprintf("[yellow]%v[white]", insp.lastErr))
	default:
		insp.StatusView.SetText("running")
	}
}
