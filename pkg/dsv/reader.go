package dsv

import (
	"io"
	"iter"

	"github.com/shapestone/shape-dsv/internal/parser"
)

// Reader decodes records lazily under a dialect.
//
// Records are produced one per call to Read; the input is consumed only as
// far as the end of the returned record. A Reader is single-pass and cannot
// be restarted.
//
// Example:
//
//	r := dsv.NewReaderString("a,b\nc,d", dsv.CSV())
//	for {
//	    rec, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    fmt.Println(rec)
//	}
type Reader struct {
	p   *parser.Parser
	err error
}

// NewReader creates a Reader that pulls input from src.
// The dialect is assumed valid; use Resolve or Dialect.Validate first.
func NewReader(src io.Reader, d Dialect) *Reader {
	return &Reader{p: parser.NewParserFromReader(src, parserOptions(d))}
}

// NewReaderString creates a Reader over an in-memory input.
func NewReaderString(input string, d Dialect) *Reader {
	return &Reader{p: parser.NewParser(input, parserOptions(d))}
}

func parserOptions(d Dialect) parser.Options {
	return parser.Options{
		Delimiter:        d.Delimiter,
		Quote:            d.QuoteChar,
		Escape:           d.EscapeChar,
		DoubleQuote:      d.DoubleQuote,
		SkipInitialSpace: d.SkipInitialSpace,
		QuoteNone:        d.Quoting == QuoteNone,
		NonNumeric:       d.Quoting == QuoteNonNumeric,
	}
}

// Read returns the next record, or io.EOF when the input is exhausted.
// A decoding failure is returned as a *DecodeError; the Reader then stays at EOF.
func (r *Reader) Read() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	rec, err := r.p.Next()
	if err != nil {
		if err != io.EOF {
			err = decodeError(err)
		}
		r.err = io.EOF
		return nil, err
	}
	return rec, nil
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// All returns an iterator over the remaining records.
// Iteration stops after the first error, which is yielded with a nil record.
func (r *Reader) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Decode reads every record of input under the dialect.
func Decode(input string, d Dialect) ([][]string, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return NewReaderString(input, d).ReadAll()
}
