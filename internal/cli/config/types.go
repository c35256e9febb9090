// Package config loads leaplint CLI configuration.
//
// Shared lint types live in pkg/core and are re-exported here via type
// aliases so command code does not need to import pkg/core directly.
package config

import (
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string      `koanf:"dialect"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Workers      int         `koanf:"workers"`
	MaxLoops     int         `koanf:"max_loops"`
	Lint         *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the
	// working directory when there is none.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultDialect  = "ansi"
	DefaultOutput   = "auto" // TTY=text, non-TTY=markdown
	DefaultMaxLoops = lint.DefaultMaxLoops
	DefaultWorkers  = 0 // one per CPU
)

// ConfigFileNames are searched for, in order, in each directory.
var ConfigFileNames = []string{"leaplint.yaml", "leaplint.yml", ".leaplint.yaml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Dialect:      DefaultDialect,
		OutputFormat: DefaultOutput,
		MaxLoops:     DefaultMaxLoops,
		Workers:      DefaultWorkers,
	}
}
