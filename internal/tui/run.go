package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

// RunBatch drives gen.Batch while rendering progress. Interrupting the
// program cancels the batch before its next variant; the partial report is
// returned together with context.Canceled.
func RunBatch(ctx context.Context, gen *variant.Generator, title string, table palette.Table, opts ...tea.ProgramOption) (*variant.BatchReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, table), opts...)

	reports := make(chan *variant.BatchReport, 1)
	go func() {
		report := gen.Batch(ctx, table, NewProgramObserver(p))
		reports <- report
		p.Send(BatchDoneMsg{Report: report})
	}()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	final, err := p.Run()
	cancel()
	report := <-reports
	if err != nil {
		return report, fmt.Errorf("progress display: %w", err)
	}

	if m, ok := final.(Model); ok && m.Cancelled() {
		return report, context.Canceled
	}
	return report, nil
}
