package graphdef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// documentValidate checks struct-level rules (required ids, non-negative weights).
var documentValidate = validator.New()

// Validate checks the document:
//   - every node and edge endpoint id is non-empty;
//   - weights, when given, are ≥ 0 (NaN is rejected);
//   - the grid, when given, is rectangular and non-empty;
//   - node ids are unique (walkable grid cells count as declared);
//   - edge endpoints are declared, unless AutoCreate is set.
//
// All failures wrap ErrInvalidDocument.
func (d *Document) Validate() error {
	if err := documentValidate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	declared := make(map[string]struct{}, len(d.Nodes))
	if d.Grid != nil {
		gg, err := d.Grid.gridGraph()
		if err != nil {
			return fmt.Errorf("%w: grid: %v", ErrInvalidDocument, err)
		}
		for _, id := range gg.WalkableIDs() {
			declared[id] = struct{}{}
		}
	}
	for i, n := range d.Nodes {
		if _, dup := declared[n.ID]; dup {
			return fmt.Errorf("%w: nodes[%d]: duplicate id %q", ErrInvalidDocument, i, n.ID)
		}
		declared[n.ID] = struct{}{}
	}
	if d.AutoCreate {
		return nil
	}
	for i, e := range d.Edges {
		for _, id := range []string{e.From, e.To} {
			if _, ok := declared[id]; !ok {
				return fmt.Errorf("%w: edges[%d]: unknown node %q", ErrInvalidDocument, i, id)
			}
		}
	}

	return nil
}
