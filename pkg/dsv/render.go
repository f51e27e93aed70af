// Package dsv provides AST rendering to delimited text.
package dsv

import (
	"bytes"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node to delimited text under the dialect.
//
// The node should be the result of Parse or ParseReader: an array of
// records, or a single record of literal fields. Every record is followed
// by "\n".
func Render(node ast.SchemaNode, d Dialect) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, d)

	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("dsv: unsupported node type for rendering: %T", node)
	}

	elements := arr.Elements()
	if len(elements) == 0 {
		return []byte{}, nil
	}

	// A file is an array of records; a record is an array of literals.
	if _, isRecord := elements[0].(*ast.LiteralNode); isRecord {
		if err := renderRecord(w, arr); err != nil {
			return nil, err
		}
	} else {
		for _, elem := range elements {
			rec, ok := elem.(*ast.ArrayDataNode)
			if !ok {
				return nil, fmt.Errorf("dsv: unexpected element type in array: %T", elem)
			}
			if err := renderRecord(w, rec); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderRecord(w *Writer, rec *ast.ArrayDataNode) error {
	values := make([]any, 0, len(rec.Elements()))
	for _, elem := range rec.Elements() {
		lit, ok := elem.(*ast.LiteralNode)
		if !ok {
			return fmt.Errorf("dsv: unexpected field type in record: %T", elem)
		}
		values = append(values, lit.Value())
	}
	return w.WriteRow(values)
}
