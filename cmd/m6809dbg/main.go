// Command m6809dbg is a minimal interactive TUI for stepping a
// cpu.Chip one instruction at a time and watching registers change,
// with a disassembly of the next instruction.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmchacon/m6809/cpu"
	"github.com/jmchacon/m6809/disasm"
	"github.com/jmchacon/m6809/memory"
)

type model struct {
	chip  *cpu.Chip
	ram   memory.Bank
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.prevPC = m.chip.PC
			if _, err := m.chip.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) status() string {
	return fmt.Sprintf(
		"PC: %.4X (was %.4X)\nD:  %.4X (A:%.2X B:%.2X)\nX:  %.4X\nY:  %.4X\nU:  %.4X\nS:  %.4X\nDP: %.2X\nCC: %.2X\nCycles: %d\nIllegal: %v  Halted: %v",
		m.chip.PC, m.prevPC, m.chip.D, m.chip.A(), m.chip.B(),
		m.chip.X, m.chip.Y, m.chip.U, m.chip.S, m.chip.DP, m.chip.CC,
		m.chip.Cycles, m.chip.Illegal(), m.chip.Halted(),
	)
}

func (m model) disassembly() string {
	line, _ := disasm.Step(m.chip.PC, m.ram)
	return "next: " + line
}

func (m model) View() string {
	box := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	body := lipgloss.JoinVertical(lipgloss.Left, m.status(), "", m.disassembly(), "", "space/s: step, q: quit")
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", fmt.Sprintf("error: %v", m.err))
	}
	return box.Render(body)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: m6809dbg <image>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ram, err := memory.New8BitRAMBank(1<<16, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i, b := range data {
		ram.Write(0x0200+uint16(i), b)
	}
	ram.Write(cpu.VecReset, 0x02)
	ram.Write(cpu.VecReset+1, 0x00)

	chip, err := cpu.New(ram)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	chip.Reset()

	if _, err := tea.NewProgram(model{chip: chip, ram: ram}).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
