package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/accentgen/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	header := fmt.Sprintf("accentgen • %s", m.heading())
	if !m.finished {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}
	sections = append(sections, titleStyle.Render(header))

	sections = append(sections, sectionStyle.Render("Progress"), m.progress.View(m.Done(), m.failed))

	if len(m.entries) > 0 {
		sections = append(sections, sectionStyle.Render("Variants"))
		sections = append(sections, components.NewVariantList(m.entries).View(listWindow))
	}

	summary := components.NewSummary(components.SummaryData{
		Total:     len(m.entries),
		Created:   m.created,
		Failed:    m.failed,
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Failures:  m.failures,
	}).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) heading() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Batch"
}
