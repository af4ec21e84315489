package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfalex/regexlib"
)

func init() {
	color.NoColor = true
}

// run executes the root command with fresh flag values. Commands share
// package state, so these tests do not run in parallel.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	grammarPath, lexJSON, lexWorkers = "", false, 0
	emitFunc, emitOutput = "GetNextToken", "-"
	dotOutput, dotPNG = "-", false
	verbose, subset, strict = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeGrammar(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "g.yaml")
	content := "whitespace: \"[ \\n]+\"\ntokens:\n  - name: number\n    pattern: \"[0-9]+\"\n  - name: word\n    pattern: \"[a-z]+\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "", "match", "'.*'", "'asdf'", "ASDF")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `yes  0 "'asdf'" (6/6 bytes)`, lines[0])
	assert.Equal(t, `no  -1 "ASDF" (0/4 bytes)`, lines[1])
}

func TestMatchCommandStrict(t *testing.T) {
	out, err := run(t, "", "match", "x(a?)+y", "xy")
	require.NoError(t, err)
	assert.Contains(t, out, `yes  0 "xy"`)

	out, err = run(t, "", "match", "--strict", "x(a?)+y", "xy")
	require.NoError(t, err)
	assert.Contains(t, out, `no  -1 "xy"`)
}

func TestMatchCommandBadPattern(t *testing.T) {
	_, err := run(t, "", "match", "(a", "a")
	assert.ErrorIs(t, err, regexlib.ErrMalformedPattern)
}

func TestEmitCommand(t *testing.T) {
	out, err := run(t, "", "emit", "--func", "next_token", "[0-9]+", "[a-z]+")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "int next_token() {\n"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"), out)
	assert.Contains(t, out, "chr >= 97 && chr <= 122")
	assert.Contains(t, out, "return 1;")
}

func TestEmitHelpDescribesMaximalConsumption(t *testing.T) {
	assert.NotContains(t, emitCmd.Long, "longest")
	assert.Contains(t, emitCmd.Long, "without\nbacking up")
}

func TestEmitCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.c")
	out, err := run(t, "", "emit", "-o", path, "a")
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "int GetNextToken() {")
}

func TestDotCommand(t *testing.T) {
	out, err := run(t, "", "dot", "[0-9]+")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"), out)
	assert.Contains(t, out, `q0 -> q1 [label="0-9"];`)

	_, err = run(t, "", "dot", "--png", "a")
	assert.Error(t, err)
}

func TestLexCommandFilesJSON(t *testing.T) {
	dir := t.TempDir()
	g := writeGrammar(t, dir)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("12 ab"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("cd\n3"), 0o644))

	out, err := run(t, "", "lex", "--grammar", g, "--json", a, b)
	require.NoError(t, err)

	var got []fileTokens
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Path)
	require.Len(t, got[0].Tokens, 2)
	assert.Equal(t, "number", got[0].Tokens[0].Name)
	assert.Equal(t, b, got[1].Path)
	require.Len(t, got[1].Tokens, 2)
	assert.Equal(t, 1, got[1].Tokens[1].Line)
	assert.Empty(t, got[1].Error)
}

func TestLexCommandStdin(t *testing.T) {
	g := writeGrammar(t, t.TempDir())
	out, err := run(t, "12 ab", "lex", "-g", g)
	require.NoError(t, err)
	assert.Contains(t, out, "0:0\tnumber\t\"12\"")
	assert.Contains(t, out, "0:3\tword\t\"ab\"")
}

func TestLexCommandFailures(t *testing.T) {
	dir := t.TempDir()
	g := writeGrammar(t, dir)

	out, err := run(t, "12 ?", "lex", "-g", g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 inputs failed")
	assert.Contains(t, out, "error:")

	_, err = run(t, "", "lex")
	assert.Error(t, err)

	_, err = run(t, "", "lex", "-g", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
