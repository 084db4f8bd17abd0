package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func executeRender(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"render"}, args...))

	err := root.Execute()
	return ansi.Strip(stdout.String()), stderr.String(), err
}

func TestRenderCommandPrintsShowcase(t *testing.T) {
	out, stderr, err := executeRender(t, "--width", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "Design System Showcase")
	assert.Contains(t, out, "Accordion")
	assert.Contains(t, out, "Profile updated.")
	assert.Empty(t, stderr, "render stays quiet without -v")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRenderCommandNotFoundView(t *testing.T) {
	out, _, err := executeRender(t, "--width", "80", "--view", "not-found")
	require.NoError(t, err)

	assert.Contains(t, out, "Page not found")
	assert.NotContains(t, out, "Design System Showcase")
}

func TestRenderCommandDarkTheme(t *testing.T) {
	out, _, err := executeRender(t, "--width", "80", "--theme", "dark")
	require.NoError(t, err)

	assert.Contains(t, out, "☀ Light")
}

func TestRenderCommandCatalogueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
open_section = 7

[[alerts]]
id = 1
severity = "warning"
message = "Custom alert"

[[sections]]
id = 7
title = "Custom section"
body = "Custom body"
`), 0o644))

	out, _, err := executeRender(t, "--width", "80", "--catalogue", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Custom alert")
	assert.Contains(t, out, "Custom section")
	assert.Contains(t, out, "Custom body")
	assert.NotContains(t, out, "Profile updated.")
}

func TestRenderCommandRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		option string
	}{
		{name: "theme", args: []string{"--theme", "sepia"}, option: "theme"},
		{name: "view", args: []string{"--view", "settings"}, option: "view"},
		{name: "width", args: []string{"--width", "5"}, option: "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeRender(t, tt.args...)
			require.Error(t, err)

			var optErr *showcaseerrors.OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.option, optErr.Option)
		})
	}
}

func TestRenderCommandMissingCatalogue(t *testing.T) {
	_, _, err := executeRender(t, "--catalogue", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalogue")
}

func TestRenderCommandVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := executeRender(t, "--width", "80", "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "rendering showcase")
	assert.Contains(t, stderr, "catalogue loaded")
}
