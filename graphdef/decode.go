package graphdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes the definition at path, choosing the format by extension.
// The document is not validated; call Validate or Build.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphdef: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := decode(f, format, path)
	if err != nil {
		return nil, fmt.Errorf("graphdef: load %s: %w", path, err)
	}

	return doc, nil
}

// Decode reads a whole definition from r in the given format.
func Decode(r io.Reader, format Format) (*Document, error) {
	return decode(r, format, "definition."+format.String())
}

func decode(r io.Reader, format Format, name string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphdef: read: %w", err)
	}

	switch format {
	case FormatYAML, FormatJSON:
		return decodeYAML(src)
	case FormatHCL:
		return decodeHCL(src, name)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func decodeYAML(src []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		// An empty file is an empty graph.
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("graphdef: decode yaml: %w", err)
	}

	return &doc, nil
}

// hclDocument is the top-level structure of an HCL definition.
type hclDocument struct {
	Directed   *bool     `hcl:"directed,optional"`
	AutoCreate *bool     `hcl:"auto_create,optional"`
	Grid       *hclGrid  `hcl:"grid,block"`
	Nodes      []hclNode `hcl:"node,block"`
	Edges      []hclEdge `hcl:"edge,block"`
}

type hclGrid struct {
	Rows        [][]int `hcl:"rows"`
	Diagonal    *bool   `hcl:"diagonal,optional"`
	MinWalkable *int    `hcl:"min_walkable,optional"`
}

type hclNode struct {
	ID    string    `hcl:"id,label"`
	Label *string   `hcl:"label,optional"`
	Tags  cty.Value `hcl:"tags,optional"`
}

type hclEdge struct {
	From          string   `hcl:"from"`
	To            string   `hcl:"to"`
	Weight        *float64 `hcl:"weight,optional"`
	Bidirectional *bool    `hcl:"bidirectional,optional"`
}

func decodeHCL(src []byte, name string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphdef: parse hcl: %w", diags)
	}

	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("graphdef: decode hcl: %w", diags)
	}

	doc := &Document{
		Nodes: make([]NodeDef, 0, len(raw.Nodes)),
		Edges: make([]EdgeDef, 0, len(raw.Edges)),
	}
	if raw.Directed != nil {
		doc.Directed = *raw.Directed
	}
	if raw.AutoCreate != nil {
		doc.AutoCreate = *raw.AutoCreate
	}
	if raw.Grid != nil {
		doc.Grid = &GridDef{Rows: raw.Grid.Rows, MinWalkable: raw.Grid.MinWalkable}
		if raw.Grid.Diagonal != nil {
			doc.Grid.Diagonal = *raw.Grid.Diagonal
		}
	}
	for _, n := range raw.Nodes {
		def := NodeDef{ID: n.ID}
		if n.Label != nil {
			def.Label = *n.Label
		}
		tags, err := tagsFromCty(n.Tags)
		if err != nil {
			return nil, fmt.Errorf("graphdef: node %q tags: %w", n.ID, err)
		}
		def.Tags = tags
		doc.Nodes = append(doc.Nodes, def)
	}
	for _, e := range raw.Edges {
		doc.Edges = append(doc.Edges, EdgeDef(e))
	}

	return doc, nil
}

// tagsFromCty converts an HCL object or map into string tags. Non-string
// scalars are converted (numbers and bools become their literal text).
func tagsFromCty(v cty.Value) (map[string]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("want an object, got %s", ty.FriendlyName())
	}

	vals := v.AsValueMap()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make(map[string]string, len(vals))
	for _, k := range keys {
		s, err := convert.Convert(vals[k], cty.String)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", k, err)
		}
		if s.IsNull() {
			continue
		}
		tags[k] = s.AsString()
	}

	return tags, nil
}
