// Package dsv provides a dialect-driven codec for delimited text.
//
// A Dialect names the delimiter, quote character, escape character,
// doubled-quote behavior, quoting policy and initial-space handling. Dialects
// come from the csv and tsv presets or from name:value option tokens:
//
//	_, d, err := dsv.ResolveTokens([]string{"dialect:tsv", "quoting:QUOTE_ALL"}, dsv.DefaultDialect())
//
// Decoding is lazy: a Reader returns one record per call and never reads
// past the end of that record. Encoding writes one record per call.
//
// # Thread Safety
//
// Dialects are values and package functions keep no shared mutable state,
// so independent calls are safe for concurrent use. A single Reader or
// Writer must not be used from multiple goroutines.
//
// # AST
//
// Parse and Render bridge to Shape's unified AST:
//
//	node, err := dsv.Parse("a,b\nc,d", dsv.CSV())
//	// node is an *ast.ArrayDataNode of records; each record is an
//	// *ast.ArrayDataNode of *ast.LiteralNode string fields.
//	out, err := dsv.Render(node, dsv.TSV())
//	// out: "a\tb\nc\td\n"
package dsv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse decodes input into an AST under the dialect.
func Parse(input string, d Dialect) (ast.SchemaNode, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return parseRecords(NewReaderString(input, d))
}

// ParseReader decodes everything readable from r into an AST under the dialect.
func ParseReader(r io.Reader, d Dialect) (ast.SchemaNode, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return parseRecords(NewReader(r, d))
}

// Validate checks that input decodes under the dialect.
func Validate(input string, d Dialect) error {
	_, err := Decode(input, d)
	return err
}

func parseRecords(r *Reader) (ast.SchemaNode, error) {
	records := make([]ast.SchemaNode, 0, 16)
	for rec, err := range r.All() {
		if err != nil {
			return nil, err
		}
		fields := make([]ast.SchemaNode, len(rec))
		for i, f := range rec {
			fields[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(fields, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}
