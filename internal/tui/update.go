package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accentgen/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case VariantStartMsg:
		m.setStatus(msg.Index, components.StatusRunning, "")
		return m, nil
	case VariantDoneMsg:
		if msg.Index < 0 || msg.Index >= len(m.entries) {
			return m, nil
		}
		previous := m.entries[msg.Index].Status
		if previous == components.StatusDone || previous == components.StatusFailed {
			return m, nil
		}
		if msg.Err != nil {
			m.failed++
			m.failures = append(m.failures, msg.Err.Error())
			m.setStatus(msg.Index, components.StatusFailed, msg.Err.Error())
			return m, nil
		}
		m.created++
		m.setStatus(msg.Index, components.StatusDone, treeNames(msg))
		return m, nil
	case BatchDoneMsg:
		m.finished = true
		m.report = msg.Report
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}

func treeNames(msg VariantDoneMsg) string {
	if msg.Result == nil {
		return ""
	}
	names := make([]string, 0, len(msg.Result.Trees))
	for _, tree := range msg.Result.Trees {
		names = append(names, filepath.Base(tree.Destination))
	}
	return fmt.Sprintf("→ %s", strings.Join(names, ", "))
}
