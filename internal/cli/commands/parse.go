package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/parser"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Format   string
	CodeOnly bool // Hide whitespace, newlines and comments
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the parse tree of a SQL file",
		Long: `Parse a SQL file with the configured dialect and print its segment tree.

Use "-" to read from standard input. Unparsable sections are reported and
make the command fail.`,
		Example: `  # Show the tree of a model
  leaplint parse models/orders.sql

  # Parse stdin with the snowflake dialect, code segments only
  echo "SELECT 1" | leaplint parse --dialect snowflake --code-only -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")
	cmd.Flags().BoolVar(&opts.CodeOnly, "code-only", false, "Hide non-code leaves")

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	d, err := cmdCtx.Dialect()
	if err != nil {
		return err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path comes from the command line
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := parser.Parse(string(data), d)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("parsed", "path", path, "dialect", d.Name(), "leaves", len(tree.Leaves()))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(toParseNode(tree, opts.CodeOnly)); err != nil {
			return err
		}
	case output.ModeMarkdown:
		r.Println(output.FormatCodeBlock("", formatTree(tree, opts.CodeOnly)))
	default:
		r.Print(formatTree(tree, opts.CodeOnly))
	}

	if errs := parser.Errors(tree); len(errs) > 0 {
		for _, pe := range errs {
			r.Error(pe.Error())
		}
		return fmt.Errorf("%s: %d unparsable sections", path, len(errs))
	}
	return nil
}

// formatTree renders one segment per line: position, indentation, type and,
// for leaves, the quoted raw text.
func formatTree(tree *segment.Segment, codeOnly bool) string {
	var b strings.Builder
	tree.Walk(func(seg *segment.Segment, parents []*segment.Segment) bool {
		if codeOnly && seg.IsLeaf() && !seg.Code {
			return true
		}
		fmt.Fprintf(&b, "%-8s %s%s", seg.Start(), strings.Repeat("  ", len(parents)), seg.Type)
		if seg.IsLeaf() {
			fmt.Fprintf(&b, " %q", seg.Raw)
		} else {
			b.WriteString(":")
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

// parseNode is the JSON shape of a segment.
type parseNode struct {
	Type     string       `json:"type"`
	Raw      string       `json:"raw,omitempty"`
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Children []*parseNode `json:"children,omitempty"`
}

func toParseNode(seg *segment.Segment, codeOnly bool) *parseNode {
	n := &parseNode{
		Type:  seg.Type,
		Start: seg.Start().String(),
		End:   seg.End().String(),
	}
	if seg.IsLeaf() {
		n.Raw = seg.Raw
		return n
	}
	for _, child := range seg.Children {
		if codeOnly && child.IsLeaf() && !child.Code {
			continue
		}
		n.Children = append(n.Children, toParseNode(child, codeOnly))
	}
	return n
}
