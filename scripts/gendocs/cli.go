package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leaplint/internal/cli"
	"github.com/leapstack-labs/leaplint/internal/cli/config"
)

// workflow is the path the CLI index walks a new project through.
var workflow = []struct {
	args string
	note string
}{
	{"init --dialect postgres", "write leaplint.yaml with every rule option at its default"},
	{"lint models/", "report issues"},
	{"lint --fix models/", "rewrite fixable issues in place"},
	{"lint --watch models/", "re-lint on every save"},
	{"rules LT08", "read a rule's rationale and examples"},
	{"parse models/orders.sql", "show the segment tree rules walk"},
	{"dialects postgres --rules", "list the grammar a dialect defines"},
}

// seeAlso links command pages that are used together.
var seeAlso = map[string][]string{
	"lint":     {"rules", "parse", "init"},
	"rules":    {"lint"},
	"dialects": {"parse"},
	"parse":    {"dialects", "lint"},
	"init":     {"lint"},
}

// argument is one positional argument parsed from a cobra Use line.
type argument struct {
	name       string
	required   bool
	repeatable bool
}

// example is one commented command from a cobra Example block.
type example struct {
	title string
	lines []string
}

func generateCLIDocs(outDir string) error {
	root := cli.NewRootCmd()
	cmds := documented(root)

	if err := writeFile(outDir, "index.md", cliIndex(root, cmds)); err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := writeFile(outDir, cmd.Name()+".md", commandPage(cmd)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	log.Printf("  Generated %d command pages", len(cmds))
	return nil
}

func writeFile(dir, name string, w *MarkdownWriter) error {
	return os.WriteFile(filepath.Join(dir, name), w.Bytes(), 0o600)
}

func documented(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == cobra.ShellCompRequestCmd {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func cliIndex(root *cobra.Command, cmds []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leaplint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leaplint/cmd/leaplint@latest")

	w.Header(2, "Workflow")
	width := 0
	for _, step := range workflow {
		width = max(width, len(step.args))
	}
	steps := make([]string, 0, len(workflow))
	for _, step := range workflow {
		steps = append(steps, fmt.Sprintf("leaplint %-*s  # %s", width, step.args, step.note))
	}
	w.CodeBlock("bash", strings.Join(steps, "\n"))

	w.Header(2, "Commands")
	rows := make([][]string, 0, len(cmds))
	for _, cmd := range cmds {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	flagTable(w, root.PersistentFlags())

	w.Header(2, "Configuration")
	w.Paragraph("Settings resolve in this order, highest first: explicitly set flags, " +
		"environment variables, " + InlineCode(config.ConfigFileNames[0]) + ", built-in defaults. " +
		"Lint settings (disabled rules, severities, rule options) are read from the file only.")
	w.Table([]string{"Key", "Environment", "Flags"}, configRows(root))

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode(strconv.Itoa(cli.ExitOK)), "Clean, or interrupted"},
		{InlineCode(strconv.Itoa(cli.ExitIssues)), "Lint issues remain"},
		{InlineCode(strconv.Itoa(cli.ExitError)), "Any other error, reported on stderr"},
	})
	return w
}

// configRows lists each environment-settable key with the flags that
// also write it.
func configRows(root *cobra.Command) [][]string {
	flagsByKey := make(map[string][]string)
	seen := make(map[string]bool)
	collect := func(f *pflag.Flag) {
		key, ok := config.FlagKey(f.Name)
		if !ok || seen[f.Name] {
			return
		}
		seen[f.Name] = true
		flagsByKey[key] = append(flagsByKey[key], InlineCode("--"+f.Name))
	}
	root.PersistentFlags().VisitAll(collect)
	for _, cmd := range root.Commands() {
		cmd.LocalFlags().VisitAll(collect)
	}

	rows := make([][]string, 0, len(config.EnvKeys))
	for _, key := range config.EnvKeys {
		rows = append(rows, []string{
			InlineCode(key),
			InlineCode(config.EnvVar(key)),
			strings.Join(flagsByKey[key], ", "),
		})
	}
	return rows
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Synopsis")
	w.CodeBlock("bash", cmd.UseLine())

	if args := useArgs(cmd.Use); len(args) > 0 {
		w.Header(2, "Arguments")
		items := make([]string, 0, len(args))
		for _, arg := range args {
			kind := "optional"
			if arg.required {
				kind = "required"
			}
			if arg.repeatable {
				kind += ", repeatable"
			}
			items = append(items, fmt.Sprintf("%s (%s)", InlineCode(arg.name), kind))
		}
		w.BulletList(items)
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		flagTable(w, cmd.LocalFlags())
	}

	if cmd.HasAvailableInheritedFlags() {
		var names []string
		cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
			if !f.Hidden {
				names = append(names, InlineCode("--"+f.Name))
			}
		})
		w.Paragraph("Also accepts the [global options](/cli/#global-options): " + strings.Join(names, ", ") + ".")
	}

	if examples := parseExamples(cmd.Example); len(examples) > 0 {
		w.Header(2, "Examples")
		for _, ex := range examples {
			if len(ex.lines) == 0 {
				continue
			}
			if ex.title != "" {
				w.Header(3, ex.title)
			}
			w.CodeBlock("bash", strings.Join(ex.lines, "\n"))
		}
	}

	if related := seeAlso[cmd.Name()]; len(related) > 0 {
		w.Header(2, "See Also")
		links := make([]string, 0, len(related))
		for _, name := range related {
			links = append(links, fmt.Sprintf("[%s](/cli/%s)", InlineCode("leaplint "+name), name))
		}
		w.BulletList(links)
	}
	return w
}

// flagTable writes flags with the config key each one sets, if any.
func flagTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name = InlineCode("-"+f.Shorthand) + ", " + name
		}
		key := ""
		if k, ok := config.FlagKey(f.Name); ok {
			key = InlineCode(k)
		}
		rows = append(rows, []string{name, flagDefault(f), key, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Default", "Config Key", "Description"}, rows)
}

func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "[]", "false", "0":
		return ""
	}
	return InlineCode(f.DefValue)
}

// useArgs parses the positional arguments of a Use line such as
// "lint [paths...]" or "parse <file>".
func useArgs(use string) []argument {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}
	var out []argument
	for _, field := range fields[1:] {
		var arg argument
		switch {
		case strings.HasPrefix(field, "<") && strings.HasSuffix(field, ">"):
			arg.required = true
			arg.name = field[1 : len(field)-1]
		case strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]"):
			arg.name = field[1 : len(field)-1]
		default:
			continue
		}
		if name, ok := strings.CutSuffix(arg.name, "..."); ok {
			arg.name = name
			arg.repeatable = true
		}
		out = append(out, arg)
	}
	return out
}

// parseExamples splits an Example block on its "# title" comment lines.
func parseExamples(text string) []example {
	var out []example
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
			out = append(out, example{title: strings.TrimSpace(strings.TrimPrefix(line, "#"))})
		default:
			if len(out) == 0 {
				out = append(out, example{})
			}
			out[len(out)-1].lines = append(out[len(out)-1].lines, line)
		}
	}
	return out
}
