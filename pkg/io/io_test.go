package io

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/errors"
)

const tomlDecl = `
direction = "column"

[[panels]]
id = "sidebar"
size = 25
min_size = 10
collapsible = true

[[panels]]
id = "editor"
max_size = 80
`

const yamlDecl = `
direction: column
panels:
  - id: sidebar
    size: 25
    min_size: 10
    collapsible: true
  - id: editor
    max_size: 80
`

const jsonDecl = `{
  "direction": "column",
  "panels": [
    {"id": "sidebar", "size": 25, "min_size": 10, "collapsible": true},
    {"id": "editor", "max_size": 80}
  ]
}`

func TestRead(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatTOML, tomlDecl},
		{FormatYAML, yamlDecl},
		{FormatJSON, jsonDecl},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			d, err := Read(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)

			assert.Equal(t, gesture.Column, d.Direction)
			require.Len(t, d.Panels, 2)

			specs := d.Specs()
			assert.Equal(t, "sidebar", specs[0].ID)
			assert.True(t, specs[0].Collapsible)
			require.NotNil(t, specs[0].Size)
			assert.Equal(t, 25.0, *specs[0].Size)
			require.NotNil(t, specs[0].MinSize)
			assert.Equal(t, 10.0, *specs[0].MinSize)
			assert.Nil(t, specs[0].MaxSize)

			assert.Equal(t, "editor", specs[1].ID)
			assert.Nil(t, specs[1].Size)
			require.NotNil(t, specs[1].MaxSize)
			assert.Equal(t, 80.0, *specs[1].MaxSize)

			l := layout.Resolve(specs, log.New(io.Discard))
			assert.Equal(t, []float64{25, 75}, l.Sizes())
		})
	}
}

func TestReadDefaults(t *testing.T) {
	d, err := Read(strings.NewReader("panels:\n  - {}\n  - id: b\n"), FormatYAML)
	require.NoError(t, err)

	assert.Empty(t, d.Direction)
	assert.Equal(t, gesture.Column, d.DirectionOr(gesture.Column))
	_, err = uuid.Parse(d.Panels[0].ID)
	assert.NoError(t, err, "missing id should be replaced by a UUID")
	assert.Equal(t, "b", d.Panels[1].ID)
}

func TestReadEmpty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		d, err := Read(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Empty(t, d.Panels, format)
	}
}

func TestReadRejects(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"toml syntax", FormatTOML, "panels = [", errors.ErrCodeInvalidFormat},
		{"toml unknown key", FormatTOML, "[[panels]]\nid = \"a\"\nmin_szie = 3\n", errors.ErrCodeInvalidFormat},
		{"yaml unknown key", FormatYAML, "panels:\n  - id: a\n    colapsible: true\n", errors.ErrCodeInvalidFormat},
		{"json unknown key", FormatJSON, `{"panels": [{"id": "a", "width": 3}]}`, errors.ErrCodeInvalidFormat},
		{"json empty", FormatJSON, "", errors.ErrCodeInvalidFormat},
		{"bad direction", FormatTOML, "direction = \"diagonal\"\n", errors.ErrCodeInvalidFormat},
		{"duplicate id", FormatYAML, "panels:\n  - id: a\n  - id: a\n", errors.ErrCodeDuplicatePanel},
		{"collapsible without min", FormatJSON, `{"panels": [{"id": "a", "collapsible": true}]}`, errors.ErrCodeInvalidSpec},
		{"negative size", FormatTOML, "[[panels]]\nid = \"a\"\nsize = -4.0\n", errors.ErrCodeInvalidSpec},
		{"unknown format", Format("ini"), "", errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"dir/a.YAML", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("panels.ini")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panels.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDecl), 0o644))

	d, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Panels, 2)

	_, err = ReadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = ReadFile(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "got %v", err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestWriteLayoutReproducesLayout(t *testing.T) {
	l := layout.Layout{
		{ID: "sidebar", Size: 0, MinSize: 10, MaxSize: 40, Collapsible: true},
		{ID: "editor", Size: 62.5, MinSize: 20, MaxSize: 100},
		{ID: "preview", Size: 37.5, MinSize: 0, MaxSize: 100},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, gesture.RowReverse, l))

	d, err := Read(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, gesture.RowReverse, d.Direction)
	assert.Equal(t, gesture.RowReverse, d.DirectionOr(gesture.Row))
	assert.Equal(t, l, layout.Resolve(d.Specs(), log.New(io.Discard)))
}

func TestWriteFileEveryFormat(t *testing.T) {
	l := layout.Layout{
		{ID: "a", Size: 30, MinSize: 10, MaxSize: 100, Collapsible: true},
		{ID: "b", Size: 70, MinSize: 0, MaxSize: 100},
	}
	decl := FromLayout(gesture.Column, l)

	for _, name := range []string{"out.toml", "out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, decl))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, decl, got)
		})
	}

	err := WriteFile(filepath.Join(t.TempDir(), "out.txt"), decl)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
}
