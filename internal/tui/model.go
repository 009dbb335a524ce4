package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/tui/components"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

// VariantStartMsg indicates a variant is being generated.
type VariantStartMsg struct {
	Index int
	Entry palette.Entry
}

// VariantDoneMsg reports that a variant has finished.
type VariantDoneMsg struct {
	Index  int
	Entry  palette.Entry
	Result *variant.Result
	Err    error
}

// BatchDoneMsg carries the final report and ends the program.
type BatchDoneMsg struct {
	Report *variant.BatchReport
}

// listWindow bounds how many rows the variant list shows.
const listWindow = 20

// Model contains the Bubbletea state for the batch progress view.
type Model struct {
	title     string
	entries   []components.VariantEntry
	progress  components.Progress
	spinner   spinner.Model
	failures  []string
	created   int
	failed    int
	finished  bool
	cancelled bool
	report    *variant.BatchReport
}

// NewModel constructs a batch model for table.
func NewModel(title string, table palette.Table) Model {
	entries := make([]components.VariantEntry, 0, len(table))
	for _, e := range table {
		entries = append(entries, components.VariantEntry{Name: e.Name, Color: e.Color})
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = runningStyle

	return Model{
		title:    title,
		entries:  entries,
		progress: components.NewProgress(len(table)),
		spinner:  sp,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Total returns the number of variants in the batch.
func (m Model) Total() int {
	return len(m.entries)
}

// Done returns the number of variants that finished, successfully or not.
func (m Model) Done() int {
	return m.created + m.failed
}

// IsFinished reports whether the batch ended or was cancelled.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the batch.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Report returns the batch report once BatchDoneMsg arrived.
func (m Model) Report() *variant.BatchReport {
	return m.report
}

func (m *Model) setStatus(index int, status components.Status, message string) {
	if index < 0 || index >= len(m.entries) {
		return
	}
	m.entries[index].Status = status
	m.entries[index].Message = message
}
