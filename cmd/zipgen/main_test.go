package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandStdout(t *testing.T) {
	out, _, err := execute(t, "--stdout", "--min", "2", "--max", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "type Zip2[A, B any] struct")
	assert.NotContains(t, out, "Zip3")
}

func TestCommandConfigWithFlagOverride(t *testing.T) {
	cfg := writeConfig(t, "package: zips\nmin: 2\nmax: 4\n")

	out, _, err := execute(t, "--stdout", "--config", cfg, "--max", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "package zips")
	assert.Contains(t, out, "func NewZip3[")
	assert.NotContains(t, out, "Zip4")
}

func TestCommandWritesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zip.gen.go")

	_, stderr, err := execute(t, "--output", path, "--max", "3", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="rendered arity"`)
	assert.Contains(t, stderr, "zip=Zip3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func NewZip2[")
}

func TestCommandErrors(t *testing.T) {
	_, _, err := execute(t, "--stdout", "--min", "1")
	assert.ErrorContains(t, err, "min arity 1 is below 2")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, _, err = execute(t, "extra")
	assert.Error(t, err)
}
