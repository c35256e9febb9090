package layout

import (
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

func init() {
	lint.Register(EndOfFile)
}

// EndOfFile requires exactly one trailing newline.
var EndOfFile = lint.RuleDef{
	ID:           "LT12",
	Name:         "layout.end_of_file",
	Group:        "layout",
	Description:  "Files must end with a single trailing newline.",
	Severity:     core.SeverityInfo,
	SegmentTypes: []string{segment.TypeFile},
	Check:        checkEndOfFile,

	Rationale: `Tools that concatenate or diff SQL files expect a final newline.
Extra blank lines at the end of a file are noise in reviews.`,

	BadExample: `SELECT a FROM foo`,

	GoodExample: `SELECT a FROM foo
`,

	Fix: "Add the missing newline or delete the surplus ones.",
}

func checkEndOfFile(ctx *lint.Context) []lint.Finding {
	file := ctx.Segment
	if len(file.Children) == 0 || !file.IsCode() {
		return nil
	}

	leaves := file.Leaves()
	anchor := leaves[len(leaves)-1]
	var newlines []*segment.Segment // last first
	for i := len(leaves) - 1; i >= 0; i-- {
		leaf := leaves[i]
		if leaf.IsType(segment.TypeNewline) {
			newlines = append(newlines, leaf)
		} else if !leaf.IsType(segment.TypeWhitespace) {
			break
		}
		anchor = leaf
	}

	switch len(newlines) {
	case 1:
		return nil
	case 0:
		last := file.Children[len(file.Children)-1]
		return []lint.Finding{ctx.Report(anchor, "Files must end with a trailing newline.",
			lint.InsertAfter(last, segment.NewNewline()))}
	default:
		fixes := make([]lint.Fix, 0, len(newlines)-1)
		for _, nl := range newlines[1:] {
			fixes = append(fixes, lint.Delete(nl))
		}
		return []lint.Finding{ctx.Report(anchor, "Files must end with a single trailing newline.", fixes...)}
	}
}
