package regexlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitC(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile("[0-9]+").EmitC(&buf, ""))
	want := `int GetNextToken() {
    int chr = 0;
    state_0:
    chr = getchar();
    if (chr >= 48 && chr <= 57){
        goto state_1;
    }
    return -1;
    state_1:
    chr = getchar();
    if (chr >= 48 && chr <= 57){
        goto state_1;
    }
    return 0;
}`
	assert.Equal(t, want, buf.String())
}

func TestEmitCDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile(".").EmitC(&buf, "lex"))
	want := `int lex() {
    int chr = 0;
    state_0:
    chr = getchar();
    goto state_1;
    state_1:
    return 0;
}`
	assert.Equal(t, want, buf.String())
}

func TestEmitCKeepsTransitionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile("[a-z]x|[c-d]y").EmitC(&buf, ""))
	out := buf.String()
	ab := strings.Index(out, "chr >= 97 && chr <= 98")
	cd := strings.Index(out, "chr >= 99 && chr <= 100")
	ez := strings.Index(out, "chr >= 101 && chr <= 122")
	require.True(t, ab >= 0 && cd >= 0 && ez >= 0, out)
	assert.Less(t, ab, cd)
	assert.Less(t, cd, ez)
}

func TestExportDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile("[0-9]+").ExportDOT(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `q0 [shape=circle, label="q0"];`)
	assert.Contains(t, out, `q1 [shape=doublecircle, label="q1\n#0"];`)
	assert.Contains(t, out, `q0 -> q1 [label="0-9"];`)
	assert.Contains(t, out, "_start -> q0;")
}

func TestExportDOTEscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile(`'.*"`).ExportDOT(&buf))
	out := buf.String()
	assert.Contains(t, out, `[label=".", style=dashed]`)
	assert.Contains(t, out, `[label="\""]`)
}
