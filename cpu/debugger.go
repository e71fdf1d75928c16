package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// debugModel is the bubbletea model for the interactive
// single-stepper. It only drives the public façade; there is no
// private execution path.
type debugModel struct {
	cpu *CPU

	prevPC uint16
	err    error
}

func (m debugModel) Init() tea.Cmd {
	return nil
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			if m.cpu.Halt() != Continue {
				return m, tea.Quit
			}
			m.prevPC = m.cpu.PC()
			ok, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if !ok {
				// stay on the final state; the next step or quit key quits
				return m, nil
			}
		}
	}
	return m, nil
}

// renderRow renders 16 memory cells as one line, highlighting the
// cell under the PC.
func (m debugModel) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b, err := m.cpu.Peek(start + i)
		if err != nil {
			s += " --  "
			continue
		}
		if start+i == m.cpu.PC() {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m debugModel) memoryPane() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	// zero page head, stack top, and the rows around the PC
	starts := []uint16{
		0x0000, 0x0010,
		StackTop & 0xfff0,
	}
	pcRow := m.cpu.PC() & 0xfff0
	for _, off := range []uint16{0, 16, 32} {
		starts = append(starts, pcRow+off)
	}

	for _, start := range starts {
		rows = append(rows, m.renderRow(start))
	}
	return strings.Join(rows, "\n")
}

func (m debugModel) statusPane() string {
	var marks string
	for _, f := range []flag{
		P_Negative,
		P_Overflow,
		P_Expansion,
		P_Break,
		P_Decimal,
		P_InterruptDisable,
		P_Zero,
		P_Carry,
	} {
		if m.cpu.p.isSet(f) {
			marks += "/ "
		} else {
			marks += "  "
		}
	}

	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
N V - B D I Z C
%s
%s`,
		m.cpu.PC(), m.prevPC,
		m.cpu.A(), m.cpu.X(), m.cpu.Y(), m.cpu.S(),
		marks,
		m.cpu.Halt(),
	)
}

func (m debugModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryPane(),
			m.statusPane(),
		),
		"",
		spew.Sdump(m.cpu.DisassembleCurrent()),
	)
}

// Debug starts an interactive TUI over the CPU: space or j steps one
// instruction, q quits. The caller is expected to have loaded a
// program and set the entry point.
func (cpu *CPU) Debug() error {
	m, err := tea.NewProgram(debugModel{cpu: cpu}).Run()
	if err != nil {
		return err
	}
	if x := m.(debugModel); x.err != nil {
		return x.err
	}
	return nil
}
