package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/showcase"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_MatchesShippedSeed(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	seed := cat.Seed(showcase.ThemeLight)
	want := showcase.DefaultSeed()

	assert.Equal(t, want.Alerts, seed.Alerts)
	assert.Equal(t, want.Toasts, seed.Toasts)
	assert.Equal(t, want.Sections, seed.Sections)
	assert.Equal(t, want.OpenSection, seed.OpenSection)
	assert.Len(t, cat.Table.Columns, 3)
	assert.Len(t, cat.Table.Rows, 3)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("", nil)
	require.NoError(t, err)
	assert.Len(t, cat.Alerts, 4)
}

func TestLoad_TOMLMatchesYAML(t *testing.T) {
	fromYAML, err := Default()
	require.NoError(t, err)

	fromTOML, err := Load(filepath.Join("testdata", "default.toml"), nil)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse("catalogue.json", []byte(`{}`))

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "unsupported catalogue extension")
}

func TestParse_YAMLSyntaxErrorReportsLine(t *testing.T) {
	path := writeFile(t, "broken.yaml", "alerts:\n  - id: 1\n    severity: [info\n")

	_, err := Load(path, nil)

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Greater(t, parseErr.Line, 0)
}

func TestParse_UnknownYAMLField(t *testing.T) {
	_, err := Parse("c.yaml", []byte("colour: teal\n"))

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_UnknownTOMLKey(t *testing.T) {
	_, err := Parse("c.toml", []byte("colour = \"teal\"\n"))

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "colour")
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name: "duplicate alert ids",
			doc: `
alerts:
  - {id: 1, severity: info, message: one}
  - {id: 1, severity: error, message: two}
sections:
  - {id: 1, title: t, body: b}
`,
			field: "alerts",
		},
		{
			name: "unknown severity",
			doc: `
alerts:
  - {id: 1, severity: fatal, message: one}
sections:
  - {id: 1, title: t, body: b}
`,
			field: "alerts[0].severity",
		},
		{
			name: "missing message",
			doc: `
toasts:
  - {id: 1, severity: success}
sections:
  - {id: 1, title: t, body: b}
`,
			field: "toasts[0].message",
		},
		{
			name: "no sections",
			doc: `
alerts:
  - {id: 1, severity: info, message: one}
`,
			field: "sections",
		},
		{
			name: "open section not defined",
			doc: `
sections:
  - {id: 1, title: t, body: b}
open_section: 3
`,
			field: "open_section",
		},
		{
			name: "ragged table row",
			doc: `
sections:
  - {id: 1, title: t, body: b}
table:
  columns:
    - {title: Name, width: 10}
  rows:
    - [a, b]
`,
			field: "table.rows[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("c.yaml", []byte(tt.doc))
			require.Error(t, err)

			var valErr *showcaseerrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSeed_FillsDefaultIcons(t *testing.T) {
	cat := &Catalogue{
		Alerts: []NoticeSpec{{ID: 7, Severity: "warning", Message: "careful"}},
	}

	seed := cat.Seed(showcase.ThemeDark)

	require.Len(t, seed.Alerts, 1)
	assert.Equal(t, "⚠", seed.Alerts[0].Icon)
	assert.Equal(t, showcase.SeverityWarning, seed.Alerts[0].Severity)
	assert.Equal(t, showcase.ThemeDark, seed.Theme)
}
