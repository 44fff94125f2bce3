package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lightsScript = "../../testdata/lights.yaml"

func TestRunLights(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-script", lightsScript}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "applied 5, declined 4, undone 0")
	assert.Contains(t, out, `warning: [ghost] Radius = 1: [unknown-target]`)
	assert.Contains(t, out, `(did you mean "Distance"?)`)
	assert.Contains(t, out, `name="Reading lamp"`)
	assert.Contains(t, out, `visible=false tag="editor-only"`)
}

func TestRunUndoAndDump(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-script", lightsScript, "-undo", "2", "-dump"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "undone 2")
	assert.Contains(t, out, `visible=true tag="editor-only"`, "root visibility change undone")
	assert.Contains(t, out, "(*scene.Graph)")
}

func TestRunConfig(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "inspector.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("history_limit: 2\nlog:\n  format: json\n"), 0o600))

	var stdout, stderr bytes.Buffer

	code := run([]string{"-script", lightsScript, "-config", cfg, "-undo", "5", "-log-level", "debug"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	assert.Contains(t, stdout.String(), "undone 2", "history limit caps undo")
	assert.Contains(t, stderr.String(), `"msg":"replay finished"`)
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "missing script", args: nil, want: exitUsage},
		{name: "unknown flag", args: []string{"-nope"}, want: exitUsage},
		{name: "negative undo", args: []string{"-script", lightsScript, "-undo", "-1"}, want: exitUsage},
		{name: "bad log level", args: []string{"-script", lightsScript, "-log-level", "loud"}, want: exitFailure},
		{name: "missing file", args: []string{"-script", "does-not-exist.yaml"}, want: exitFailure},
		{name: "help", args: []string{"-h"}, want: exitOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &stdout, &stderr))
		})
	}
}
