// Package runner lints and fixes SQL files in parallel.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/parser"
)

// SQLExt is the extension of files picked up when walking directories.
const SQLExt = ".sql"

// ParseErrorRuleID labels unparsable sections in reports.
const ParseErrorRuleID = "PRS"

// Options configures a Runner.
type Options struct {
	Dialect  *dialect.Dialect
	Lint     *lint.Config
	Rules    []lint.RuleDef // explicit rule set; nil means the registry
	Fix      bool
	Workers  int // <= 0 means one per CPU
	MaxLoops int
	Logger   *slog.Logger
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path        string
	Findings    []lint.Finding // findings left after fixing, if fixing
	ParseErrors []*parser.ParseError
	Fix         *lint.FixResult // nil unless fixing ran
	Fixed       bool            // the file was rewritten
	Err         error           // I/O or parser failure
}

// Runner lints files with a shared, read-only Linter.
type Runner struct {
	opts   Options
	linter *lint.Linter
	logger *slog.Logger
}

// New creates a Runner.
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	linterOpts := []lint.Option{lint.WithLogger(logger)}
	if opts.MaxLoops > 0 {
		linterOpts = append(linterOpts, lint.WithMaxLoops(opts.MaxLoops))
	}
	if opts.Rules != nil {
		linterOpts = append(linterOpts, lint.WithRules(opts.Rules...))
	}

	return &Runner{
		opts:   opts,
		linter: lint.NewLinter(opts.Dialect, opts.Lint, linterOpts...),
		logger: logger,
	}
}

// Linter returns the linter shared by all workers.
func (r *Runner) Linter() *lint.Linter {
	return r.linter
}

// Run processes every file named by paths. Directories are walked for .sql
// files. Per-file failures are reported in the results; the returned error
// covers path discovery and cancellation only.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := CollectFiles(paths)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files)
}

// RunFiles processes files in parallel and returns results in input order.
func (r *Runner) RunFiles(ctx context.Context, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.File(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// File lints one file and, when fixing, writes the fixed text back.
func (r *Runner) File(path string) FileResult {
	res := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the command line
	if err != nil {
		res.Err = err
		return res
	}

	src := string(data)
	out, fixed := r.Source(path, src, &res)
	if res.Err != nil || !fixed || out == src {
		return res
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("write fixed file: %w", err)
		return res
	}
	res.Fixed = true
	r.logger.Debug("fixed file", "path", path, "loops", res.Fix.Loops, "applied", len(res.Fix.Applied))
	return res
}

// Source lints src into res and returns the possibly fixed text. The
// boolean reports whether fixing ran. Files with unparsable sections are
// linted but never fixed.
func (r *Runner) Source(name, src string, res *FileResult) (string, bool) {
	tree, err := parser.Parse(src, r.opts.Dialect)
	if err != nil {
		res.Err = fmt.Errorf("parse: %w", err)
		return src, false
	}
	res.ParseErrors = parser.Errors(tree)

	if !r.opts.Fix || len(res.ParseErrors) > 0 {
		if r.opts.Fix {
			r.logger.Warn("not fixing file with parse errors", "path", name, "errors", len(res.ParseErrors))
		}
		res.Findings = r.linter.Lint(tree)
		return src, false
	}

	fixRes, err := r.linter.Fix(tree)
	res.Fix = fixRes
	if fixRes != nil {
		res.Findings = fixRes.Remaining
	}
	if err != nil {
		r.logger.Warn("fix loop did not converge", "path", name, "error", err)
	}
	return tree.RawText(), true
}

// CollectFiles expands paths into a sorted, de-duplicated file list.
// Files named explicitly are kept whatever their extension. Hidden
// directories below a named directory are skipped.
func CollectFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == SQLExt {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return files, nil
}
