package lint

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/fix"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

// DefaultMaxLoops bounds the lint/fix cycle.
const DefaultMaxLoops = 10

// ErrLoopLimit is returned by Fix when fixes were still being produced after
// the last permitted pass.
var ErrLoopLimit = errors.New("fix loop limit reached")

// Linter runs a fixed set of rules against trees of one dialect.
// A Linter holds no per-file state and may be shared across goroutines.
type Linter struct {
	dialect  *dialect.Dialect
	config   *Config
	rules    []RuleDef
	explicit bool
	maxLoops int
	logger   *slog.Logger
}

// Option configures a Linter.
type Option func(*Linter)

// WithRules runs exactly these rules instead of the registered ones.
// Config still disables and overrides them.
func WithRules(rules ...RuleDef) Option {
	return func(l *Linter) {
		l.rules = rules
		l.explicit = true
	}
}

// WithMaxLoops sets the lint/fix pass cap. Values below one are ignored.
func WithMaxLoops(n int) Option {
	return func(l *Linter) {
		if n > 0 {
			l.maxLoops = n
		}
	}
}

// WithLogger sets the logger handed to rules.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLinter creates a linter for d. A nil config enables every rule.
func NewLinter(d *dialect.Dialect, config *Config, opts ...Option) *Linter {
	if config == nil {
		config = NewConfig()
	}
	l := &Linter{
		dialect:  d,
		config:   config,
		maxLoops: DefaultMaxLoops,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	name := ""
	if d != nil {
		name = d.Name()
	}
	candidates := l.rules
	if !l.explicit {
		candidates = GetByDialect(name)
	}

	enabled := make([]RuleDef, 0, len(candidates))
	for _, rule := range candidates {
		if config.IsDisabled(rule.ID) || !rule.AppliesTo(name) {
			continue
		}
		enabled = append(enabled, rule)
	}
	sortRules(enabled)
	l.rules = enabled
	return l
}

// Rules returns the enabled rules in evaluation order.
func (l *Linter) Rules() []RuleDef {
	return slices.Clone(l.rules)
}

// Lint runs one pass of every enabled rule over tree.
// Findings are grouped by rule in ID order and by document order within a rule.
func (l *Linter) Lint(tree *segment.Segment) []Finding {
	if tree == nil {
		return nil
	}
	var findings []Finding
	for i := range l.rules {
		findings = append(findings, l.runRule(&l.rules[i], tree)...)
	}
	return findings
}

func (l *Linter) runRule(rule *RuleDef, tree *segment.Segment) (findings []Finding) {
	base := Context{
		Rule:    rule,
		Dialect: l.dialect,
		Options: l.config.GetRuleOptions(rule.ID),
		Logger:  l.logger.With("rule", rule.ID),
	}

	defer func() {
		if r := recover(); r != nil {
			base.Logger.Error("rule panicked", "panic", r)
			findings = []Finding{{
				RuleID:           rule.ID,
				Severity:         core.SeverityError,
				Message:          fmt.Sprintf("internal error in rule %s: %v", rule.ID, r),
				Anchor:           tree,
				Pos:              tree.Start(),
				EndPos:           tree.End(),
				Internal:         true,
				DocumentationURL: BuildDocURL(rule.ID),
			}}
		}
	}()

	tree.Walk(func(seg *segment.Segment, parents []*segment.Segment) bool {
		if len(rule.SegmentTypes) > 0 && !seg.IsType(rule.SegmentTypes...) {
			return true
		}
		ctx := base
		ctx.Segment = seg
		ctx.Parents = parents
		findings = append(findings, rule.Check(&ctx)...)
		return true
	})

	for i := range findings {
		if findings[i].RuleID == "" {
			findings[i].RuleID = rule.ID
		}
		findings[i].Severity = l.config.GetSeverity(rule.ID, findings[i].Severity)
	}
	return findings
}

// FixResult reports the outcome of a fix run.
type FixResult struct {
	Tree             *segment.Segment
	Loops            int           // passes that applied at least one fix
	Applied          []fix.Fix     // every fix applied, in order
	Skipped          []fix.Skipped // fixes whose target was gone when applied
	Remaining        []Finding     // findings on the final tree
	LoopLimitReached bool
}

// Fix lints tree and applies the proposed fixes, repeating until a pass
// proposes nothing, nothing proposed could be applied, or the pass cap is
// hit. The tree is modified in place. Hitting the cap returns ErrLoopLimit
// together with the result.
func (l *Linter) Fix(tree *segment.Segment) (*FixResult, error) {
	res := &FixResult{Tree: tree}
	if tree == nil {
		return res, nil
	}

	for res.Loops < l.maxLoops {
		findings := l.Lint(tree)
		fixes := collectFixes(findings)
		if len(fixes) == 0 {
			res.Remaining = findings
			return res, nil
		}

		applied := fix.Apply(tree, fixes)
		res.Skipped = append(res.Skipped, applied.Skipped...)
		if len(applied.Applied) == 0 {
			res.Remaining = findings
			return res, nil
		}
		res.Loops++
		res.Applied = append(res.Applied, applied.Applied...)
		l.logger.Debug("fix pass applied",
			"pass", res.Loops,
			"applied", len(applied.Applied),
			"skipped", len(applied.Skipped))
	}

	res.Remaining = l.Lint(tree)
	if len(collectFixes(res.Remaining)) == 0 {
		return res, nil
	}
	res.LoopLimitReached = true
	return res, fmt.Errorf("%w after %d passes", ErrLoopLimit, l.maxLoops)
}

func collectFixes(findings []Finding) []Fix {
	var fixes []Fix
	for _, f := range findings {
		fixes = append(fixes, f.Fixes...)
	}
	return fixes
}

// SortFindings orders findings by position, then rule ID, for reporting.
func SortFindings(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		if c := cmp.Compare(a.Pos.Offset, b.Pos.Offset); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
}
