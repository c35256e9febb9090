// Package main generates markdown documentation for leaplint from the
// registered commands, rules and dialects.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=dialects -outdir=docs/dialects
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, rules, dialects, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generator writes one kind of documentation into a directory.
type generator struct {
	name   string
	subdir string
	run    func(outDir string) error
}

var generators = []generator{
	{"cli", "cli", generateCLIDocs},
	{"rules", "rules", generateRuleDocs},
	{"dialects", "dialects", generateDialectDocs},
	{"config", "", generateConfigDocs},
}

func main() {
	flag.Parse()

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	if err := run(projectRoot, *genFlag, *outDirFlag); err != nil {
		log.Fatal(err)
	}
	log.Println("Done!")
}

func run(projectRoot, gen, outDir string) error {
	matched := false
	for _, g := range generators {
		if gen != "all" && gen != g.name {
			continue
		}
		matched = true
		dir := outDir
		if dir == "" || gen == "all" {
			dir = filepath.Join(projectRoot, "docs", g.subdir)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := g.run(dir); err != nil {
			return fmt.Errorf("failed to generate %s docs: %w", g.name, err)
		}
	}
	if !matched {
		return fmt.Errorf("unknown -gen value: %s (use: cli, rules, dialects, config, all)", gen)
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
