package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/lint"
)

type sampleOptions struct {
	CommaStyle string `mapstructure:"comma_style"`
	MaxLength  int    `mapstructure:"max_length"`
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    map[string]any
		want    sampleOptions
		wantErr string
	}{
		{
			name: "defaults kept",
			opts: nil,
			want: sampleOptions{CommaStyle: "trailing", MaxLength: 10},
		},
		{
			name: "overrides",
			opts: map[string]any{"comma_style": "leading"},
			want: sampleOptions{CommaStyle: "leading", MaxLength: 10},
		},
		{
			name: "weak typing from env strings",
			opts: map[string]any{"max_length": "42"},
			want: sampleOptions{CommaStyle: "trailing", MaxLength: 42},
		},
		{
			name:    "unknown key",
			opts:    map[string]any{"coma_style": "leading"},
			wantErr: "coma_style",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampleOptions{CommaStyle: "trailing", MaxLength: 10}
			err := lint.DecodeOptions(tt.opts, &got)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
