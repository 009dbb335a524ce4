package variant

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// Observer receives batch progress. Calls happen on the batch goroutine.
type Observer interface {
	VariantStarted(index, total int, entry palette.Entry)
	VariantFinished(index, total int, entry palette.Entry, result *Result, err error)
}

// BatchReport collects the outcome of a batch run.
type BatchReport struct {
	RunID    string
	Results  []*Result
	Failures []error
}

// Failed reports whether any variant failed.
func (r *BatchReport) Failed() bool {
	return r != nil && len(r.Failures) > 0
}

// Batch creates one variant per table entry, in order. A failing variant is
// recorded and the run moves on; cancellation stops before the next entry.
func (g *Generator) Batch(ctx context.Context, table palette.Table, obs Observer) *BatchReport {
	report := &BatchReport{RunID: uuid.NewString()}
	log := g.log.With("run_id", report.RunID)
	log.Info("batch started", "variants", len(table))

	batch := *g
	batch.log = log

	for i, entry := range table {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, accenterrors.NewVariantError(entry.Name, err))
			break
		}

		if obs != nil {
			obs.VariantStarted(i, len(table), entry)
		}

		res, err := batch.Create(ctx, entry.Name, entry.Color)
		if err != nil {
			err = accenterrors.NewVariantError(entry.Name, err)
			report.Failures = append(report.Failures, err)
			log.Error(err, "variant failed", "variant", entry.Name)
		} else {
			report.Results = append(report.Results, res)
		}

		if obs != nil {
			obs.VariantFinished(i, len(table), entry, res, err)
		}
	}

	log.Info("batch finished", "created", len(report.Results), "failed", len(report.Failures))
	return report
}
