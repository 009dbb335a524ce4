package variant

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alexisbeaulieu97/accentgen/internal/fsutil"
	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/pkg/diff"
	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// FileDiff is the pending change to one file of one tree.
type FileDiff struct {
	Source   string
	Path     string
	Diff     string
	Warnings []string
}

// Preview applies the rewrites of a variant to the source files in memory
// and returns a diff per changed file. Nothing is written.
func (g *Generator) Preview(ctx context.Context, name, base string) ([]FileDiff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := NewIdentity(name)
	if err != nil {
		return nil, err
	}
	p, err := palette.Build(base)
	if err != nil {
		return nil, err
	}

	var out []FileDiff
	for _, source := range g.opts.Sources {
		if err := checkSource(source); err != nil {
			return nil, accenterrors.NewSourceTreeError(id.Canonical, source, err)
		}

		treeName := TreeName(source, id)
		for _, t := range g.targets(p, treeName) {
			path := filepath.Join(source, t.rel)
			content, _, err := fsutil.ReadText(path)
			if err != nil {
				if errors.Is(err, accenterrors.ErrFileNotFound) {
					continue
				}
				return nil, fmt.Errorf("read %s: %w", path, err)
			}

			res, err := t.apply(content)
			if err != nil {
				return nil, fmt.Errorf("patch %s: %w", path, err)
			}
			if !res.Changed && len(res.Warnings) == 0 {
				continue
			}

			out = append(out, FileDiff{
				Source: source,
				Path:   t.rel,
				Diff: diff.GenerateUnifiedDiff(
					[]byte(content), []byte(res.Content),
					filepath.ToSlash(filepath.Join(filepath.Base(source), t.rel)),
					filepath.ToSlash(filepath.Join(treeName, t.rel)),
				),
				Warnings: res.Warnings,
			})
		}
	}
	return out, nil
}
