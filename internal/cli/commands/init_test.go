package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
)

func TestWriteInitConfig(t *testing.T) {
	tests := []struct {
		name     string
		existing bool
		force    bool
		wantErr  bool
	}{
		{name: "empty directory"},
		{name: "existing config without force", existing: true, wantErr: true},
		{name: "existing config with force", existing: true, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "project")
			if tt.existing {
				require.NoError(t, os.MkdirAll(dir, 0o750))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "leaplint.yaml"), []byte("existing"), 0o600))
			}

			path, err := writeInitConfig(dir, "postgres", tt.force)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already exists")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "leaplint.yaml"), path)

			cfg, err := config.NewLoader(dir).Load("")
			require.NoError(t, err)
			assert.Equal(t, "postgres", cfg.Dialect)
			assert.Equal(t, config.DefaultMaxLoops, cfg.MaxLoops)
			require.NotNil(t, cfg.Lint)
			assert.Equal(t, "trailing", cfg.Lint.Rules["LT08"]["comma_style"])
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := executeCommand(t, dir, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "leaplint project initialized!")
	assert.FileExists(t, filepath.Join(dir, "leaplint.yaml"))
}
