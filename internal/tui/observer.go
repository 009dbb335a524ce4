package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramObserver forwards batch events to a Bubbletea program.
type ProgramObserver struct {
	sender Sender
}

// NewProgramObserver returns an observer sending to s.
func NewProgramObserver(s Sender) *ProgramObserver {
	return &ProgramObserver{sender: s}
}

// VariantStarted implements variant.Observer.
func (o *ProgramObserver) VariantStarted(index, _ int, entry palette.Entry) {
	o.sender.Send(VariantStartMsg{Index: index, Entry: entry})
}

// VariantFinished implements variant.Observer.
func (o *ProgramObserver) VariantFinished(index, _ int, entry palette.Entry, result *variant.Result, err error) {
	o.sender.Send(VariantDoneMsg{Index: index, Entry: entry, Result: result, Err: err})
}

var _ variant.Observer = (*ProgramObserver)(nil)
