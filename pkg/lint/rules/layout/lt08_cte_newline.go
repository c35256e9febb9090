package layout

import (
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

func init() {
	lint.Register(CTENewline)
}

// CTENewline requires a blank line after each CTE's closing bracket.
var CTENewline = lint.RuleDef{
	ID:           "LT08",
	Name:         "layout.cte_newline",
	Group:        "layout",
	Description:  "Blank line expected but not found after CTE closing bracket.",
	Severity:     core.SeverityWarning,
	ConfigKeys:   []string{"comma_style"},
	SegmentTypes: []string{"with_compound_statement"},
	Check:        checkCTENewline,

	Rationale: `In queries with many CTEs a missing blank line after each closing
bracket makes it hard to see where one definition ends and the next begins.`,

	BadExample: `WITH plop AS (
    SELECT * FROM foo
)
SELECT a FROM plop`,

	GoodExample: `WITH plop AS (
    SELECT * FROM foo
)

SELECT a FROM plop`,

	Fix: `Insert a blank line after the bracket. For CTEs written on one line,
comma_style (trailing or leading) decides which side of the comma gets it.`,
}

const cteNewlineMessage = "Blank line expected but not found after CTE closing bracket."

// CommaStyle classifies where the comma between two CTEs sits relative to
// the closing bracket and the next content.
type CommaStyle int

// Comma placements.
const (
	CommaFinal    CommaStyle = iota // no comma: last CTE
	CommaOneLine                    // bracket and next content share a line
	CommaTrailing                   // comma on the bracket's line
	CommaLeading                    // comma on the next content's line
	CommaFloating                   // comma on a line of its own
)

func (c CommaStyle) String() string {
	switch c {
	case CommaFinal:
		return "final"
	case CommaOneLine:
		return "oneline"
	case CommaTrailing:
		return "trailing"
	case CommaLeading:
		return "leading"
	case CommaFloating:
		return "floating"
	default:
		return "unknown"
	}
}

type cteNewlineOptions struct {
	CommaStyle string `mapstructure:"comma_style"`
}

const (
	commaStyleTrailing = "trailing"
	commaStyleLeading  = "leading"
)

// bracketSpan maps the stretch between a CTE's closing bracket and the next
// real content.
type bracketSpan struct {
	segs         []*segment.Segment // segs[0] is the bracket
	stop         int                // first segment that is code and not a comma
	lineIdx      int                // newlines crossed before stop
	blankLines   int
	commaIdx     int // -1 when there is no comma
	commaLine    int
	commentLines map[int]bool
	lineStarts   map[int]int // line index -> first segment index on that line
}

func checkCTENewline(ctx *lint.Context) []lint.Finding {
	opts := cteNewlineOptions{CommaStyle: commaStyleTrailing}
	if err := lint.DecodeOptions(ctx.Options, &opts); err != nil {
		ctx.Logger.Warn("ignoring invalid options", "error", err)
		opts = cteNewlineOptions{CommaStyle: commaStyleTrailing}
	}

	expanded := ctx.Segment.Expand("common_table_expression")

	var findings []lint.Finding
	for _, idx := range cteBrackets(expanded) {
		span, ok := scanForward(expanded[idx:])
		if !ok {
			ctx.Logger.Debug("no content after CTE bracket", "pos", expanded[idx].Start())
			continue
		}
		style := span.style()
		ctx.Logger.Debug("CTE closing bracket",
			"pos", expanded[idx].Start(),
			"comma_style", style,
			"blank_lines", span.blankLines,
			"line_idx", span.lineIdx)

		if span.blankLines > 0 {
			continue
		}

		anchor := span.segs[span.stop]
		fx, ok := span.fix(style, opts.CommaStyle)
		if !ok {
			findings = append(findings, ctx.Report(anchor, cteNewlineMessage))
			continue
		}
		findings = append(findings, ctx.Report(anchor, cteNewlineMessage, fx))
	}
	return findings
}

// cteBrackets returns the indexes of brackets whose nearest preceding keyword
// is AS. Column-list brackets follow the CTE name instead and are skipped.
func cteBrackets(segs []*segment.Segment) []int {
	var out []int
	for i, seg := range segs {
		if !seg.IsType(segment.TypeBracketed) {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if segs[j].IsType(segment.TypeKeyword) {
				if segs[j].RawUpper() == "AS" {
					out = append(out, i)
				}
				break
			}
		}
	}
	return out
}

// scanForward walks from just after the bracket to the next segment that is
// neither a comma nor non-code. It reports false if there is none.
func scanForward(segs []*segment.Segment) (bracketSpan, bool) {
	span := bracketSpan{
		segs:         segs,
		commaIdx:     -1,
		commentLines: make(map[int]bool),
		lineStarts:   make(map[int]int),
	}
	lineBlank := false

	i := 1
	for ; i < len(segs); i++ {
		seg := segs[i]
		if !seg.IsType(segment.TypeComma) && seg.IsCode() {
			break
		}
		switch {
		case seg.IsType(segment.TypeNewline):
			if lineBlank {
				span.blankLines++
			}
			lineBlank = true
			span.lineIdx++
			span.lineStarts[span.lineIdx] = i + 1
		case seg.IsType(segment.TypeComment):
			lineBlank = false
			span.commentLines[span.lineIdx] = true
		case seg.IsType(segment.TypeComma):
			span.commaIdx = i
			span.commaLine = span.lineIdx
		}
	}
	if i >= len(segs) {
		return span, false
	}
	span.stop = i
	return span, true
}

func (s bracketSpan) style() CommaStyle {
	switch {
	case s.commaIdx < 0:
		return CommaFinal
	case s.lineIdx == 0:
		return CommaOneLine
	case s.commaLine == 0:
		return CommaTrailing
	case s.commaLine == s.lineIdx:
		return CommaLeading
	default:
		return CommaFloating
	}
}

// fix picks the single edit that creates the missing blank line. It reports
// false when commaStyle gives no insertion point for a one-line CTE.
func (s bracketSpan) fix(style CommaStyle, commaStyle string) (lint.Fix, bool) {
	if style == CommaOneLine {
		switch commaStyle {
		case commaStyleTrailing:
			next := s.segs[s.commaIdx+1]
			if next.IsType(segment.TypeWhitespace) {
				return lint.Replace(next, segment.Newlines(2)...), true
			}
			return lint.InsertBefore(next, segment.Newlines(2)...), true
		case commaStyleLeading:
			return lint.InsertBefore(s.segs[s.commaIdx], segment.Newlines(2)...), true
		default:
			return lint.Fix{}, false
		}
	}

	// Keep a comment block attached to the content below it. Line 0 is the
	// bracket's own line and has no recorded start.
	if prev := s.lineIdx - 1; prev > 0 && s.commentLines[prev] {
		first := prev
		for first-1 > 0 && s.commentLines[first-1] {
			first--
		}
		return lint.InsertBefore(s.segs[s.lineStarts[first]], segment.NewNewline()), true
	}

	switch style {
	case CommaLeading:
		return lint.InsertBefore(s.segs[s.commaIdx], segment.NewNewline()), true
	case CommaFinal, CommaTrailing, CommaFloating:
		if prev := s.segs[s.stop-1]; prev.IsType(segment.TypeWhitespace) {
			return lint.Replace(prev, segment.NewNewline()), true
		}
		return lint.InsertBefore(s.segs[s.stop], segment.NewNewline()), true
	}
	return lint.Fix{}, false
}
