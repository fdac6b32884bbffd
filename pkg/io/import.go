package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/panels/pkg/errors"
)

// Read decodes a declaration in the given format from r.
//
// Unknown keys are rejected so that a misspelt "min_szie" does not silently
// fall back to a default. Panels without an id get a generated UUID. An absent
// direction is left empty (see [Declaration.DirectionOr]). Read returns an *errors.Error with code
// INVALID_FORMAT for undecodable input, DUPLICATE_PANEL for a repeated id,
// and INVALID_SPEC for a panel the resolver could not use.
//
// Read does not close r.
func Read(r io.Reader, format Format) (*Declaration, error) {
	var d Declaration
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}

	if err := d.normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile reads the declaration at path, picking the format from its
// extension. A missing file yields FILE_NOT_FOUND.
func ReadFile(path string) (*Declaration, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	d, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return d, nil
}
