package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriang/golox/report"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestRunPrintsTokens(t *testing.T) {
	var out bytes.Buffer
	rep := report.NewReporter(&bytes.Buffer{})

	run("1 + 2;", rep, &out)

	assert.False(t, rep.HadError())
	assert.Equal(t,
		"NUMBER: '1' 1 1\n"+
			"PLUS: '+' <nil> 1\n"+
			"NUMBER: '2' 2 1\n"+
			"SEMICOLON: ';' <nil> 1\n"+
			"EOF: '' <nil> 1\n",
		out.String())
}

func TestRunFileCleanSource(t *testing.T) {
	path := writeSource(t, "print 1;")

	var out, errOut bytes.Buffer
	code, err := runFile(path, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "PRINT: 'print' <nil> 1")
	assert.Contains(t, out.String(), "EOF: '' <nil> 1")
}

func TestRunFileExits65OnScanError(t *testing.T) {
	path := writeSource(t, "@ 1")

	var out, errOut bytes.Buffer
	code, err := runFile(path, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, 65, code)
	assert.Equal(t, "[line 1] Error: unexpected character '@'\n", errOut.String())
	// the scan still ran to completion
	assert.Contains(t, out.String(), "NUMBER: '1' 1 1")
}

func TestRunFileMissing(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := runFile(filepath.Join(t.TempDir(), "nope.lox"), &out, &errOut)
	assert.Error(t, err)
}

func TestReplLineResetsBetweenPrompts(t *testing.T) {
	var out bytes.Buffer
	rep := report.NewReporter(&bytes.Buffer{})

	// a bad line reports but does not poison the session
	assert.False(t, replLine("@", rep, &out))
	assert.False(t, rep.HadError())

	assert.True(t, replLine("var x = 1;", rep, &out))
	assert.Contains(t, out.String(), "VAR: 'var' <nil> 1")
}
