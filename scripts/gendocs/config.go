package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema mirrors internal/cli/config.Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "dialect", Type: "string", Default: config.DefaultDialect, Description: "SQL dialect used to parse files"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown or json"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log debug detail to stderr"},
		{Name: "workers", Type: "int", Default: strconv.Itoa(config.DefaultWorkers), Description: "Files processed in parallel (0 = one per CPU)"},
		{Name: "max_loops", Type: "int", Default: strconv.Itoa(config.DefaultMaxLoops), Description: "Maximum lint/fix passes per file"},
		{Name: "lint.disabled", Type: "[]string", Description: "Rule IDs to skip"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Per-rule severity override"},
		{Name: "lint.rules", Type: "map[string]map[string]any", Description: "Per-rule options, keyed by rule ID"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leaplint configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("leaplint reads the first of `leaplint.yaml`, `leaplint.yml` or `.leaplint.yaml` found in the working directory or one of its parents. Run `leaplint init` to create one.")

	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		} else {
			defVal = InlineCode(defVal)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
	}
	w.Header(2, "Fields")
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Built-in defaults",
		"The configuration file",
		InlineCode("LEAPLINT_*") + " environment variables",
		"Command-line flags",
	})

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# leaplint.yaml
dialect: postgres
workers: 0
max_loops: 10

lint:
  disabled:
    - LT12
  severity:
    LT08: error
  rules:
    LT08:
      comma_style: trailing`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0o600)
}
