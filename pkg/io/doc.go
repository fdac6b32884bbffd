// Package io reads and writes panel group declarations.
//
// # Overview
//
// A declaration describes one panel group: its direction and the ordered
// list of panels with their optional sizes and bounds. It is the file-based
// equivalent of calling [group.Group.RegisterPanel] once per panel, and is
// what the panels CLI operates on. Declarations are not persisted state: a
// layout written by [WriteLayout] is simply a declaration whose sizes are
// all set.
//
// # Formats
//
// TOML, YAML and JSON are supported and chosen by file extension (see
// [FormatFromPath]). A declaration in TOML:
//
//	direction = "row"
//
//	[[panels]]
//	id = "sidebar"
//	size = 25
//	min_size = 10
//	collapsible = true
//
//	[[panels]]
//	id = "editor"
//
// The same in YAML:
//
//	direction: row
//	panels:
//	  - id: sidebar
//	    size: 25
//	    min_size: 10
//	    collapsible: true
//	  - id: editor
//
// And in JSON:
//
//	{
//	  "direction": "row",
//	  "panels": [
//	    {"id": "sidebar", "size": 25, "min_size": 10, "collapsible": true},
//	    {"id": "editor"}
//	  ]
//	}
//
// # Panel Fields
//
// Optional, all of them:
//   - id: Unique identifier (a UUID is generated when omitted)
//   - size: Initial share of the group, in percent
//   - min_size, max_size: Bounds, in percent (default 0 and 100)
//   - collapsible: Whether the panel snaps to zero past min_size
//     (requires min_size)
//
// # Validation
//
// [Read] and [ReadFile] reject unknown keys, duplicate ids, unknown
// directions and specs that [layout.Spec.Validate] refuses. Sizes outside
// their bounds are not an error here; the resolver reports them.
//
// [group.Group.RegisterPanel]: github.com/matzehuels/panels/pkg/group.Group.RegisterPanel
// [layout.Spec.Validate]: github.com/matzehuels/panels/pkg/core/layout.Spec.Validate
package io
