package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/token"
)

// cteTree builds "WITH a AS (\n  SELECT 1\n)\nSELECT 1" by hand.
func cteTree() *Segment {
	bracket := NewComposite(TypeBracketed,
		NewLeaf(TypeStartBracket, "(", true),
		NewNewline(),
		NewWhitespace("  "),
		NewComposite("select_statement", NewKeyword("SELECT"), NewWhitespace(" "), NewLeaf("numeric_literal", "1", true)),
		NewNewline(),
		NewLeaf(TypeEndBracket, ")", true),
	)
	cte := NewComposite("common_table_expression",
		NewIdentifier("a"), NewWhitespace(" "), NewKeyword("AS"), NewWhitespace(" "), bracket,
	)
	with := NewComposite("with_compound_statement",
		NewKeyword("WITH"), NewWhitespace(" "), cte, NewNewline(),
		NewComposite("select_statement", NewKeyword("SELECT"), NewWhitespace(" "), NewLeaf("numeric_literal", "1", true)),
	)
	return NewComposite(TypeFile, with)
}

func TestRawTextIsLossless(t *testing.T) {
	root := cteTree()
	assert.Equal(t, "WITH a AS (\n  SELECT 1\n)\nSELECT 1", root.RawText())

	var joined string
	for _, leaf := range root.Leaves() {
		joined += leaf.Raw
	}
	assert.Equal(t, root.RawText(), joined)
}

func TestIsCode(t *testing.T) {
	assert.True(t, NewKeyword("SELECT").IsCode())
	assert.False(t, NewWhitespace(" ").IsCode())
	assert.False(t, NewComposite("x", NewNewline(), NewComment("-- c")).IsCode())
	assert.True(t, NewComposite("x", NewNewline(), NewComma()).IsCode())
}

func TestExpand(t *testing.T) {
	root := cteTree()
	with := root.Children[0]

	plain := with.Expand()
	require.Len(t, plain, 5)
	assert.Equal(t, "common_table_expression", plain[2].Type)

	expanded := with.Expand("common_table_expression")
	types := make([]string, 0, len(expanded))
	for _, s := range expanded {
		types = append(types, s.Type)
	}
	assert.Equal(t, []string{
		TypeKeyword, TypeWhitespace,
		TypeIdentifier, TypeWhitespace, TypeKeyword, TypeWhitespace, TypeBracketed,
		TypeNewline, "select_statement",
	}, types)
}

func TestWalkParents(t *testing.T) {
	root := cteTree()

	var depthOfEnd int
	var parentTypes []string
	root.Walk(func(seg *Segment, parents []*Segment) bool {
		if seg.IsType(TypeEndBracket) {
			depthOfEnd = len(parents)
			for _, p := range parents {
				parentTypes = append(parentTypes, p.Type)
			}
		}
		return true
	})

	assert.Equal(t, 4, depthOfEnd)
	assert.Equal(t, []string{TypeFile, "with_compound_statement", "common_table_expression", TypeBracketed}, parentTypes)
}

func TestWalkSkipChildren(t *testing.T) {
	root := cteTree()
	visited := 0
	root.Walk(func(seg *Segment, _ []*Segment) bool {
		visited++
		return !seg.IsType("with_compound_statement")
	})
	assert.Equal(t, 2, visited)
}

func TestFindAll(t *testing.T) {
	root := cteTree()
	assert.Len(t, root.FindAll("select_statement"), 2)
	assert.Len(t, root.FindAll(TypeNewline), 3)
	assert.Empty(t, root.FindAll("nothing_here"))
}

func TestRecalculatePositions(t *testing.T) {
	root := cteTree()
	end := root.RecalculatePositions(token.Start)

	assert.Equal(t, token.Position{Line: 4, Column: 9, Offset: 33}, end)

	closing := root.Find(func(s *Segment) bool { return s.IsType(TypeEndBracket) })
	require.NotNil(t, closing)
	assert.Equal(t, "3:1", closing.Start().String())
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, root.Start())
	assert.Equal(t, end, root.End())
}

func TestCloneKeepsIdentity(t *testing.T) {
	root := cteTree()
	clone := root.Clone()

	require.Equal(t, root.RawText(), clone.RawText())
	assert.Equal(t, root.ID, clone.ID)

	clone.Children[0].Children[0].Raw = "with"
	assert.Equal(t, "WITH", root.Children[0].Children[0].Raw)
}

func TestNewlines(t *testing.T) {
	nls := Newlines(2)
	require.Len(t, nls, 2)
	assert.NotEqual(t, nls[0].ID, nls[1].ID)
	assert.Equal(t, "\n", nls[1].Raw)
}
