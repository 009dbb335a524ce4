// Package variant materializes accent variants: it copies the source theme
// trees and drives the stylesheet and metadata rewrites inside each copy.
package variant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/accentgen/internal/fsutil"
	"github.com/alexisbeaulieu97/accentgen/internal/logger"
	"github.com/alexisbeaulieu97/accentgen/internal/metadata"
	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/stylesheet"
	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// Options fixes the trees, layout and reference values a Generator works with.
type Options struct {
	// Sources are the source theme directories, dark first.
	Sources []string
	// OutputDir receives the variant trees; empty means next to each source.
	OutputDir    string
	Layout       Layout
	ShellRefs    stylesheet.ShellReferences
	MetadataKeys []string
}

// Result describes one generated variant.
type Result struct {
	Identity Identity
	Palette  palette.Palette
	Trees    []TreeResult
}

// TreeResult lists what happened inside one output tree. Paths are relative to the tree.
type TreeResult struct {
	Source      string
	Destination string
	Patched     []string
	Unchanged   []string
	Skipped     []string
	Warnings    []string
}

// Generator creates variants from a fixed set of source trees.
type Generator struct {
	opts     Options
	injector stylesheet.Injector
	log      *logger.Logger
}

// NewGenerator returns a Generator. Zero-valued layout, shell references and
// metadata keys fall back to the defaults.
func NewGenerator(opts Options, log *logger.Logger) *Generator {
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout
	}
	if opts.ShellRefs == (stylesheet.ShellReferences{}) {
		opts.ShellRefs = stylesheet.DefaultShellReferences
	}
	if len(opts.MetadataKeys) == 0 {
		opts.MetadataKeys = append([]string(nil), metadata.DefaultKeys...)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{opts: opts, injector: stylesheet.NewInjector(opts.ShellRefs), log: log}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Destination returns the output directory of source for the variant id.
func (g *Generator) Destination(source string, id Identity) string {
	parent := g.opts.OutputDir
	if parent == "" {
		parent = filepath.Dir(filepath.Clean(source))
	}
	return filepath.Join(parent, TreeName(source, id))
}

// TreeName is the directory and theme name of source's copy for id.
func TreeName(source string, id Identity) string {
	return fmt.Sprintf("%s-%s", filepath.Base(filepath.Clean(source)), id.Canonical)
}

// Create builds the palette for base, copies every source tree to its
// destination, replacing an existing one, and patches the copies. A source
// tree that cannot be copied aborts the variant; missing files inside a tree
// are skipped.
func (g *Generator) Create(ctx context.Context, name, base string) (*Result, error) {
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

	log := g.log.With("variant", id.Canonical)
	log.Debug("palette derived", "base", p.Base, "hover", p.Hover, "active", p.Active, "light", p.Light, "dark", p.Dark)

	for _, source := range g.opts.Sources {
		if err := checkSource(source); err != nil {
			return nil, accenterrors.NewSourceTreeError(id.Canonical, source, err)
		}
	}

	result := &Result{Identity: id, Palette: p, Trees: make([]TreeResult, 0, len(g.opts.Sources))}
	for _, source := range g.opts.Sources {
		dst := g.Destination(source, id)
		if err := fsutil.ReplaceTree(source, dst); err != nil {
			g.discard(result.Trees, dst, log)
			return nil, accenterrors.NewSourceTreeError(id.Canonical, source, err)
		}
		log.Debug("tree copied", "source", source, "destination", dst)
		result.Trees = append(result.Trees, TreeResult{Source: source, Destination: dst})
	}

	for i := range result.Trees {
		tree := &result.Trees[i]
		if err := g.patchTree(tree, p, log); err != nil {
			return nil, fmt.Errorf("variant %s: %w", id.Canonical, err)
		}
		log.Info("tree patched",
			"destination", tree.Destination,
			"patched", len(tree.Patched),
			"skipped", len(tree.Skipped))
	}

	return result, nil
}

// checkSource reports a source that is not an existing directory.
func checkSource(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", source)
	}
	return nil
}

// discard removes trees copied before a later copy failed, so an aborted
// variant leaves no partial output.
func (g *Generator) discard(trees []TreeResult, failed string, log *logger.Logger) {
	dsts := []string{failed}
	for _, tree := range trees {
		dsts = append(dsts, tree.Destination)
	}
	for _, dst := range dsts {
		if err := os.RemoveAll(dst); err != nil {
			log.Warn("could not remove partial tree", "destination", dst, "error", err.Error())
		}
	}
}

func (g *Generator) patchTree(tree *TreeResult, p palette.Palette, log *logger.Logger) error {
	treeName := filepath.Base(tree.Destination)
	for _, t := range g.targets(p, treeName) {
		path := filepath.Join(tree.Destination, t.rel)

		content, perm, err := fsutil.ReadText(path)
		if err != nil {
			if errors.Is(err, accenterrors.ErrFileNotFound) {
				tree.Skipped = append(tree.Skipped, t.rel)
				log.Debug("file absent, skipped", "path", path)
				continue
			}
			return fmt.Errorf("read %s: %w", path, err)
		}

		res, err := t.apply(content)
		if err != nil {
			return fmt.Errorf("patch %s: %w", path, err)
		}
		for _, w := range res.Warnings {
			tree.Warnings = append(tree.Warnings, fmt.Sprintf("%s: %s", t.rel, w))
			log.Warn(w, "path", path)
		}

		if !res.Changed {
			tree.Unchanged = append(tree.Unchanged, t.rel)
			continue
		}
		if err := fsutil.WriteAtomic(path, []byte(res.Content), perm); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		tree.Patched = append(tree.Patched, t.rel)
	}
	return nil
}
