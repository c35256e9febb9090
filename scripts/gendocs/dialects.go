package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/all"
)

// generateDialectDocs writes an overview of every registered dialect and
// one page per dialect listing its keyword sets and grammar rules.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	names := dialect.List()
	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "SQL dialects supported by leaplint")
	w.GeneratedMarker()
	w.Header(1, "Dialects")
	w.Paragraph("Each dialect derives from a parent and overrides only what differs. Select one with `--dialect` or `dialect:` in leaplint.yaml.")

	var rows [][]string
	for _, name := range names {
		d, err := dialect.Load(name)
		if err != nil {
			return err
		}
		parent := d.Parent()
		if parent == "" {
			parent = "-"
		} else {
			parent = fmt.Sprintf("[%s](/dialects/%s)", parent, parent)
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/dialects/%s)", InlineCode(name), name),
			parent,
			fmt.Sprintf("%d", len(d.RuleNames())),
		})

		if err := generateDialectPage(outDir, d); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", name)
	}
	w.Table([]string{"Dialect", "Parent", "Grammar Rules"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0o600)
}

func generateDialectPage(outDir string, d *dialect.Dialect) error {
	w := NewMarkdownWriter()
	w.Frontmatter(d.Name(), fmt.Sprintf("The %s SQL dialect", d.Name()))
	w.GeneratedMarker()
	w.Header(1, d.Name())
	if d.Parent() != "" {
		w.Paragraph(fmt.Sprintf("Derived from %s.", InlineCode(d.Parent())))
	}

	w.Header(2, "Keyword Sets")
	for _, set := range d.KeywordSetNames() {
		members := d.KeywordSet(set)
		w.Header(3, fmt.Sprintf("%s (%d)", set, len(members)))
		codes := make([]string, len(members))
		for i, m := range members {
			codes[i] = InlineCode(m)
		}
		w.Paragraph(joinWrapped(codes, 10))
	}

	w.Header(2, "Grammar Rules")
	names := d.RuleNames()
	items := make([]string, len(names))
	for i, name := range names {
		items[i] = InlineCode(name)
	}
	w.BulletList(items)

	return os.WriteFile(filepath.Join(outDir, d.Name()+".md"), w.Bytes(), 0o600)
}

// joinWrapped joins items with ", " and breaks the line every n items.
func joinWrapped(items []string, n int) string {
	var out string
	for i, item := range items {
		switch {
		case i == 0:
		case i%n == 0:
			out += ",\n"
		default:
			out += ", "
		}
		out += item
	}
	return out
}
