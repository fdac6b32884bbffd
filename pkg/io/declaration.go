package io

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/errors"
)

// Format is a declaration file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported,
		"cannot tell the format of %s (want .toml, .yaml, .yml or .json)", path)
}

// Declaration is a panel group as written in a file.
type Declaration struct {
	Direction gesture.Direction `toml:"direction,omitempty" yaml:"direction,omitempty" json:"direction,omitempty"`
	Panels    []Panel           `toml:"panels" yaml:"panels" json:"panels"`
}

// Panel is one entry of [Declaration.Panels].
type Panel struct {
	ID          string   `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Size        *float64 `toml:"size,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
	MinSize     *float64 `toml:"min_size,omitempty" yaml:"min_size,omitempty" json:"min_size,omitempty"`
	MaxSize     *float64 `toml:"max_size,omitempty" yaml:"max_size,omitempty" json:"max_size,omitempty"`
	Collapsible bool     `toml:"collapsible,omitempty" yaml:"collapsible,omitempty" json:"collapsible,omitempty"`
}

// Spec converts the entry into a layout spec.
func (p Panel) Spec() layout.Spec {
	return layout.Spec{
		ID:          p.ID,
		Size:        p.Size,
		MinSize:     p.MinSize,
		MaxSize:     p.MaxSize,
		Collapsible: p.Collapsible,
	}
}

// Specs returns the panel specs in declaration order.
func (d *Declaration) Specs() []layout.Spec {
	specs := make([]layout.Spec, len(d.Panels))
	for i, p := range d.Panels {
		specs[i] = p.Spec()
	}
	return specs
}

// FromLayout builds a declaration that pins every panel of l at its current
// size, so that resolving it yields l again.
func FromLayout(direction gesture.Direction, l layout.Layout) *Declaration {
	d := &Declaration{Direction: direction, Panels: make([]Panel, len(l))}
	for i, p := range l {
		size, lo, hi := p.Size, p.MinSize, p.MaxSize
		d.Panels[i] = Panel{
			ID:          p.ID,
			Size:        &size,
			MinSize:     &lo,
			MaxSize:     &hi,
			Collapsible: p.Collapsible,
		}
	}
	return d
}

// DirectionOr returns the declared direction, or def when the file does not
// set one.
func (d *Declaration) DirectionOr(def gesture.Direction) gesture.Direction {
	if d.Direction == "" {
		return def
	}
	return d.Direction
}

// normalize fills in generated ids and canonicalizes the direction, then
// checks the declaration as a whole. An absent direction stays empty.
func (d *Declaration) normalize() error {
	if d.Direction != "" {
		dir, err := gesture.ParseDirection(string(d.Direction))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "direction")
		}
		d.Direction = dir
	}

	seen := make(map[string]int, len(d.Panels))
	for i := range d.Panels {
		p := &d.Panels[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if j, dup := seen[p.ID]; dup {
			return errors.New(errors.ErrCodeDuplicatePanel,
				"panels %d and %d share the id %q", j+1, i+1, p.ID)
		}
		seen[p.ID] = i
		if err := p.Spec().Validate(); err != nil {
			return err
		}
	}
	return nil
}
