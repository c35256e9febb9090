package lint

import (
	"log/slog"

	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/fix"
	"github.com/leapstack-labs/leaplint/pkg/segment"
	"github.com/leapstack-labs/leaplint/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Context passed to Check.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "LT08"
	Name        string        // Human-readable name, e.g., "layout.cte_newline"
	Group       string        // Category, e.g., "layout"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)
	Dialects    []string      // Restrict to specific dialects; nil/empty means all dialects

	// SegmentTypes limits Check to segments of these types; nil means every segment.
	SegmentTypes []string

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects ctx.Segment and returns findings.
// It must not modify the tree; edits are described with Fix values.
type CheckFunc func(ctx *Context) []Finding

// AutoFixable reports whether the rule documents an automatic fix.
func (r RuleDef) AutoFixable() bool {
	return r.Fix != ""
}

// AppliesTo reports whether the rule runs for the named dialect.
func (r RuleDef) AppliesTo(dialectName string) bool {
	if len(r.Dialects) == 0 || dialectName == "" {
		return true
	}
	for _, d := range r.Dialects {
		if d == dialectName {
			return true
		}
	}
	return false
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Dialects:        r.Dialects,
		AutoFixable:     r.AutoFixable(),
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// =============================================================================
// Evaluation Context
// =============================================================================

// Context is what a rule sees for one segment.
type Context struct {
	Rule    *RuleDef
	Segment *segment.Segment
	Parents []*segment.Segment // ancestor chain, root first
	Dialect *dialect.Dialect
	Options map[string]any // bound before the first segment is evaluated
	Logger  *slog.Logger
}

// Parent returns the direct parent of the segment, or nil at the root.
func (c *Context) Parent() *segment.Segment {
	if len(c.Parents) == 0 {
		return nil
	}
	return c.Parents[len(c.Parents)-1]
}

// Root returns the file segment.
func (c *Context) Root() *segment.Segment {
	if len(c.Parents) == 0 {
		return c.Segment
	}
	return c.Parents[0]
}

// Report builds a finding for the current rule anchored at anchor.
func (c *Context) Report(anchor *segment.Segment, message string, fixes ...Fix) Finding {
	f := Finding{
		Message: message,
		Anchor:  anchor,
		Fixes:   fixes,
	}
	if c.Rule != nil {
		f.RuleID = c.Rule.ID
		f.Severity = c.Rule.Severity
		f.DocumentationURL = BuildDocURL(c.Rule.ID)
	}
	if anchor != nil {
		f.Pos = anchor.Start()
		f.EndPos = anchor.End()
	}
	return f
}

// =============================================================================
// Findings
// =============================================================================

// Finding represents a lint finding.
type Finding struct {
	RuleID   string
	Severity core.Severity
	Message  string
	Anchor   *segment.Segment
	Pos      token.Position
	EndPos   token.Position // Optional: end of the problematic range
	Fixes    []Fix          // Ordered edits that resolve the finding

	// Internal marks a finding produced because the rule itself failed.
	Internal bool

	DocumentationURL string // URL to rule documentation
}

// AutoFixable reports whether the finding carries fixes.
func (f Finding) AutoFixable() bool {
	return len(f.Fixes) > 0
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Pos     token.Position
	EndPos  token.Position
	NewText string
}

// TextEdits converts the finding's fixes into positional edits against the
// source the finding was computed on.
func (f Finding) TextEdits() []TextEdit {
	edits := make([]TextEdit, 0, len(f.Fixes))
	for _, fx := range f.Fixes {
		if fx.Target == nil {
			continue
		}
		start, end := fx.Target.Start(), fx.Target.End()
		switch fx.Op {
		case fix.OpInsertBefore:
			edits = append(edits, TextEdit{Pos: start, EndPos: start, NewText: fx.NewText()})
		case fix.OpInsertAfter:
			edits = append(edits, TextEdit{Pos: end, EndPos: end, NewText: fx.NewText()})
		case fix.OpReplace:
			edits = append(edits, TextEdit{Pos: start, EndPos: end, NewText: fx.NewText()})
		case fix.OpDelete:
			edits = append(edits, TextEdit{Pos: start, EndPos: end})
		}
	}
	return edits
}

// =============================================================================
// Fixes
// =============================================================================

// Fix is a structural edit proposed by a rule.
type Fix = fix.Fix

// InsertBefore proposes inserting payload before target.
func InsertBefore(target *segment.Segment, payload ...*segment.Segment) Fix {
	return fix.InsertBefore(target, payload...)
}

// InsertAfter proposes inserting payload after target.
func InsertAfter(target *segment.Segment, payload ...*segment.Segment) Fix {
	return fix.InsertAfter(target, payload...)
}

// Replace proposes swapping target for payload.
func Replace(target *segment.Segment, payload ...*segment.Segment) Fix {
	return fix.Replace(target, payload...)
}

// Delete proposes removing target.
func Delete(target *segment.Segment) Fix {
	return fix.Delete(target)
}
