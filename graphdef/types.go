// Package graphdef defines the on-disk description of a navigation graph and
// builds core graphs from it.
package graphdef

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for loading and validating definitions.
var (
	// ErrUnknownFormat is returned for an unsupported file extension or Format value.
	ErrUnknownFormat = errors.New("graphdef: unknown format")

	// ErrInvalidDocument wraps every validation failure.
	ErrInvalidDocument = errors.New("graphdef: invalid document")
)

// Format selects the decoder used for a definition.
type Format int

const (
	// FormatYAML decodes YAML documents.
	FormatYAML Format = iota
	// FormatJSON decodes JSON documents (through the YAML decoder, JSON being a subset).
	FormatJSON
	// FormatHCL decodes HCL documents with node and edge blocks.
	FormatHCL
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatHCL:
		return "hcl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is a decoded graph definition.
//
// Directed sets the default for edges that do not say otherwise.
// AutoCreate lets edges name nodes that are not declared; such nodes are
// created with an empty Payload. Grid, when present, contributes one node
// per walkable cell (ID "x,y") before the declared nodes.
type Document struct {
	Directed   bool      `yaml:"directed"`
	AutoCreate bool      `yaml:"auto_create"`
	Grid       *GridDef  `yaml:"grid,omitempty"`
	Nodes      []NodeDef `yaml:"nodes" validate:"dive"`
	Edges      []EdgeDef `yaml:"edges" validate:"dive"`
}

// GridDef describes a floor plan: Rows[y][x] is the cost of entering cell
// (x,y); values below MinWalkable (default 1) are walls. Diagonal enables
// 8-way movement.
type GridDef struct {
	Rows        [][]int `yaml:"rows" validate:"required,min=1"`
	Diagonal    bool    `yaml:"diagonal"`
	MinWalkable *int    `yaml:"min_walkable,omitempty" validate:"omitempty,gte=0"`
}

// NodeDef declares one node.
type NodeDef struct {
	ID    string            `yaml:"id" validate:"required"`
	Label string            `yaml:"label,omitempty"`
	Tags  map[string]string `yaml:"tags,omitempty"`
}

// EdgeDef declares one edge. Nil Weight means core.DefaultWeight; nil
// Bidirectional means !Document.Directed.
type EdgeDef struct {
	From          string   `yaml:"from" validate:"required"`
	To            string   `yaml:"to" validate:"required"`
	Weight        *float64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
	Bidirectional *bool    `yaml:"bidirectional,omitempty"`
}

// Payload is the node value carried by graphs built from a Document.
// Grid cells carry Label "x,y" and tags x, y and cost.
type Payload struct {
	Label string
	Tags  map[string]string
}
