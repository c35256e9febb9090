package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/internal/testutil"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/all"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/lint/rules/layout"
)

const (
	badCTE   = "WITH plop AS (\n  SELECT * FROM foo\n)\nSELECT a FROM plop\n"
	fixedCTE = "WITH plop AS (\n  SELECT * FROM foo\n)\n\nSELECT a FROM plop\n"
	cleanSQL = "SELECT a FROM foo\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newRunner(t *testing.T, fix bool) *Runner {
	t.Helper()
	d, err := dialect.Load("ansi")
	require.NoError(t, err)
	return New(Options{
		Dialect: d,
		Rules:   []lint.RuleDef{layout.CTENewline, layout.EndOfFile},
		Fix:     fix,
		Workers: 2,
		Logger:  testutil.NewTestLogger(t),
	})
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.sql"), cleanSQL)
	writeFile(t, filepath.Join(dir, "a", "a.sql"), cleanSQL)
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), "")
	writeFile(t, filepath.Join(dir, ".git", "x.sql"), cleanSQL)
	explicit := filepath.Join(dir, "query.tpl")
	writeFile(t, explicit, cleanSQL)

	files, err := CollectFiles([]string{dir, explicit, filepath.Join(dir, "b.sql")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "a.sql"),
		filepath.Join(dir, "b.sql"),
		explicit,
	}, files)

	_, err = CollectFiles([]string{filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunLintOnly(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.sql")
	clean := filepath.Join(dir, "clean.sql")
	writeFile(t, bad, badCTE)
	writeFile(t, clean, cleanSQL)

	results, err := newRunner(t, false).Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, bad, results[0].Path)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, "LT08", results[0].Findings[0].RuleID)
	assert.Equal(t, "4:1", results[0].Findings[0].Pos.String())
	assert.False(t, results[0].Fixed)
	assert.Nil(t, results[0].Fix)

	assert.Equal(t, clean, results[1].Path)
	assert.Empty(t, results[1].Findings)

	data, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, badCTE, string(data), "lint only never writes")
}

func TestRunFixWritesBack(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.sql")
	clean := filepath.Join(dir, "clean.sql")
	writeFile(t, bad, badCTE)
	writeFile(t, clean, cleanSQL)

	results, err := newRunner(t, true).Run(context.Background(), []string{bad, clean})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Fixed)
	assert.Empty(t, results[0].Findings)
	require.NotNil(t, results[0].Fix)
	assert.Equal(t, 1, results[0].Fix.Loops)

	assert.False(t, results[1].Fixed, "unchanged files are not rewritten")

	data, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, fixedCTE, string(data))
}

func TestRunParseErrorsBlockFixing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.sql")
	src := "SELECT a FROM foo )))\n"
	writeFile(t, path, src)

	results, err := newRunner(t, true).Run(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].ParseErrors)
	assert.False(t, results[0].Fixed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestRunFileErrors(t *testing.T) {
	r := newRunner(t, false)
	res := r.File(filepath.Join(t.TempDir(), "gone.sql"))
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.sql"), cleanSQL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newRunner(t, false).Run(ctx, []string{dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatchRelintsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.sql")
	writeFile(t, path, cleanSQL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []FileResult, 8)
	done := make(chan error, 1)
	go func() {
		done <- newRunner(t, false).Watch(ctx, []string{dir}, 20*time.Millisecond, func(rs []FileResult) {
			batches <- rs
		})
	}()

	select {
	case first := <-batches:
		require.Len(t, first, 1)
		assert.Empty(t, first[0].Findings)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial run")
	}

	// The initial batch is reported before the watcher is registered; keep
	// rewriting until a change is seen.
	deadline := time.After(5 * time.Second)
	for {
		writeFile(t, path, badCTE)
		select {
		case rs := <-batches:
			// A batch may catch the file mid-write.
			if len(rs) != 1 || len(rs[0].Findings) != 1 {
				continue
			}
			assert.Equal(t, path, rs[0].Path)
			assert.Equal(t, "LT08", rs[0].Findings[0].RuleID)
			cancel()
			require.NoError(t, <-done)
			return
		case <-time.After(200 * time.Millisecond):
		case <-deadline:
			t.Fatal("change not picked up")
		}
	}
}
