package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"stepslider/internal/domain"
)

// historyEntry is one committed range change
type historyEntry struct {
	At     time.Time
	Handle domain.Handle
	Range  domain.Range
}

// renderHistory renders the range history, oldest first
func renderHistory(title string, entries []historyEntry) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	timeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	handleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	rangeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("51")).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title + " history"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString("  No changes yet\n")
		return b.String()
	}

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			timeStyle.Render(e.At.Format("15:04:05")),
			handleStyle.Render(fmt.Sprintf("%-5s", e.Handle)),
			rangeStyle.Render(fmt.Sprintf("%s – %s", e.Range.Lower, e.Range.Upper)),
		))
	}
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit to avoid messing with our screen
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
