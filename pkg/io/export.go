package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/errors"
)

// Write encodes d in the given format. JSON and YAML are indented by two
// spaces. The output can be read back with [Read].
func Write(w io.Writer, d *Declaration, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
	return nil
}

// WriteLayout writes l as an indented JSON declaration with every size
// pinned. Reading it back and resolving it reproduces l.
func WriteLayout(w io.Writer, direction gesture.Direction, l layout.Layout) error {
	return Write(w, FromLayout(direction, l), FormatJSON)
}

// WriteFile writes d to path in the format matching its extension.
func WriteFile(path string, d *Declaration) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, d, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
