package scan

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dfalex/lexer"
)

func testLexer() *lexer.Lexer {
	return lexer.MustCompile([]lexer.Rule{
		{Name: "number", Pattern: "[0-9]+"},
		{Name: "word", Pattern: "[a-z]+"},
	}, "[ \n]+")
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":     "1",
		"b.md":      "2",
		"sub/c.txt": "3",
	})

	got, err := Collect([]string{dir}, []string{".txt"})
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "c.txt"),
	}, got)

	got, err = Collect([]string{filepath.Join(dir, "b.md")}, []string{".txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.md")}, got)

	_, err = Collect([]string{filepath.Join(dir, "nope")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"ok.txt":  "12 ab\ncd",
		"bad.txt": "12 ?",
	})
	paths := []string{
		filepath.Join(dir, "ok.txt"),
		filepath.Join(dir, "bad.txt"),
		filepath.Join(dir, "missing.txt"),
	}

	var progress bytes.Buffer
	results, err := Files(context.Background(), zaptest.NewLogger(t), testLexer(), paths, Options{Workers: 2, Progress: &progress})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, paths[0], results[0].Path)
	require.NoError(t, results[0].Err)
	require.Len(t, results[0].Tokens, 3)
	assert.Equal(t, "cd", results[0].Tokens[2].Text)
	assert.Equal(t, 1, results[0].Tokens[2].Line)

	assert.ErrorIs(t, results[1].Err, lexer.ErrNoMatch)
	assert.Len(t, results[1].Tokens, 1)

	assert.ErrorIs(t, results[2].Err, os.ErrNotExist)
	assert.NotZero(t, progress.Len())
}

func TestFilesCancelled(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Files(ctx, nil, testLexer(), []string{filepath.Join(dir, "a.txt")}, Options{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "1"})

	w, err := NewWatcher(zaptest.NewLogger(t), []string{dir}, []string{".txt"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seen := make(chan string, 8)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(path string) { seen <- path }) }()

	writeFiles(t, dir, map[string]string{"ignored.md": "x", "a.txt": "1 2 3"})

	select {
	case path := <-seen:
		assert.Equal(t, filepath.Join(dir, "a.txt"), path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a.txt")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(zaptest.NewLogger(t), []string{dir}, []string{".txt"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seen := make(chan string, 1)
	go func() {
		_ = w.Run(ctx, func(path string) {
			select {
			case seen <- path:
			default:
			}
		})
	}()

	sub := filepath.Join(dir, "later")
	require.NoError(t, os.Mkdir(sub, 0o755))
	want := filepath.Join(sub, "b.txt")

	// the directory is added asynchronously, so keep writing until an event arrives
	require.Eventually(t, func() bool {
		if err := os.WriteFile(want, []byte("1"), 0o644); err != nil {
			return false
		}
		select {
		case path := <-seen:
			return path == want
		case <-time.After(300 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond)
}

func TestNewWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher(nil, []string{filepath.Join(t.TempDir(), "nope")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
