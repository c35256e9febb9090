package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// configKey is used to store the loaded config in context.
type configKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// envPrefix marks environment variables read as configuration.
const envPrefix = "LEAPLINT_"

// EnvKeys are the config keys that LEAPLINT_* variables can set.
var EnvKeys = []string{"dialect", "verbose", "output", "workers", "max_loops"}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return envPrefix + strings.ToUpper(key)
}

// FlagKey returns the config key a flag writes to.
func FlagKey(flag string) (string, bool) {
	key, ok := flagKeys[flag]
	return key, ok
}

// flagKeys maps the flags that feed configuration to their config keys.
// Other flags are command options and never reach the config struct.
var flagKeys = map[string]string{
	"dialect":   "dialect",
	"verbose":   "verbose",
	"output":    "output",
	"format":    "output",
	"workers":   "workers",
	"max-loops": "max_loops",
}

// configIn returns the config file in dir, or "".
func configIn(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// findConfigUpward searches upward from startDir for a config file.
func findConfigUpward(startDir string) string {
	dir := startDir
	for range maxUpwardSearchLevels {
		if found := configIn(dir); found != "" {
			return found
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Loader loads configuration from defaults, a config file, environment
// variables and flags.
type Loader struct {
	k        *koanf.Koanf
	fileUsed string
	workDir  string
}

// NewLoader creates a loader that searches for config files from workDir.
// An empty workDir means the current working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{workDir: workDir}
}

// FileUsed returns the config file read by the last Load, if any.
func (l *Loader) FileUsed() string {
	return l.fileUsed
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func (l *Loader) Load(cfgFile string, flagSets ...*pflag.FlagSet) (*Config, error) {
	l.k = koanf.New(".")
	l.fileUsed = ""

	workDir := l.workDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	// 1. Defaults
	def := Default()
	if err := l.k.Load(confmap.Provider(map[string]any{
		"dialect":   def.Dialect,
		"verbose":   false,
		"output":    def.OutputFormat,
		"workers":   def.Workers,
		"max_loops": def.MaxLoops,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file: explicit path, else nearest one at or above workDir
	if cfgFile == "" {
		cfgFile = findConfigUpward(workDir)
	}
	projectRoot := workDir
	if cfgFile != "" {
		if err := l.k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		l.fileUsed = cfgFile
		if abs, err := filepath.Abs(cfgFile); err == nil {
			projectRoot = filepath.Dir(abs)
		}
	}

	// 3. Environment: LEAPLINT_MAX_LOOPS -> max_loops
	if err := l.k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	for _, flags := range flagSets {
		if flags == nil {
			continue
		}
		if err := l.k.Load(posflag.ProviderWithFlag(flags, ".", l.k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ProjectRoot = projectRoot
	return &cfg, nil
}

// envValue maps LEAPLINT_* variables to config keys. Lint settings are
// left to the config file.
func envValue(key, value string) (string, any) {
	k := strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if slices.Contains(EnvKeys, k) {
		return k, value
	}
	return "", nil
}

// LoadConfig loads configuration relative to the current working directory.
func LoadConfig(cfgFile string, flagSets ...*pflag.FlagSet) (*Config, error) {
	return NewLoader("").Load(cfgFile, flagSets...)
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored by WithConfig, or Default().
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}
