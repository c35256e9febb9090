package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaplint/pkg/segment"
	"github.com/leapstack-labs/leaplint/pkg/token"
)

// ParseError describes a run of code no statement grammar matched.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// maxSnippet caps the source excerpt quoted in a ParseError.
const maxSnippet = 40

// Errors returns one ParseError per unparsable segment in tree.
func Errors(tree *segment.Segment) []*ParseError {
	var errs []*ParseError
	for _, seg := range tree.FindAll(segment.TypeUnparsable) {
		snippet := strings.Join(strings.Fields(seg.RawText()), " ")
		if r := []rune(snippet); len(r) > maxSnippet {
			snippet = string(r[:maxSnippet]) + "..."
		}
		errs = append(errs, &ParseError{
			Pos:     seg.Start(),
			Message: fmt.Sprintf("unparsable section %q", snippet),
		})
	}
	return errs
}
