package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

func TestParseTheme(t *testing.T) {
	mode, err := parseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, core.ThemeDark, mode)

	mode, err = parseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, core.ThemeLight, mode)

	_, err = parseTheme("")
	require.EqualError(t, err, `invalid --theme "" (expected one of: light, dark)`)
}

func TestParseView(t *testing.T) {
	view, err := parseView("not-found")
	require.NoError(t, err)
	assert.Equal(t, core.ViewNotFound, view)

	_, err = parseView("404")
	require.EqualError(t, err, `invalid --view "404" (expected one of: showcase, not-found)`)
}

func TestValidateWidth(t *testing.T) {
	assert.NoError(t, validateWidth(0))
	assert.NoError(t, validateWidth(20))
	assert.EqualError(t, validateWidth(19), `invalid --width "19"`)
}

func TestFileLogger(t *testing.T) {
	flags := &rootFlags{logLevel: "info"}
	log, closer, err := fileLogger(flags)
	require.NoError(t, err)
	require.NotNil(t, log)
	require.NoError(t, closer.Close())

	flags.logFile = t.TempDir() + "/showcase.log"
	flags.verbose = true
	log, closer, err = fileLogger(flags)
	require.NoError(t, err)
	log.Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(flags.logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"component":"tui"`)
}
