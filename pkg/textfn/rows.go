package textfn

import (
	"io"
	"iter"
	"strconv"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// Rows is the lazy result of a multiset operator.
//
// The first row is always the column header C1..Cn, sized from the first
// decoded record. Each later call to Next decodes at most one record.
//
//	rows, err := textfn.StrSplit(textfn.Text("a,b"), textfn.Text("dialect:csv"))
//	if err != nil {
//	    return err
//	}
//	defer rows.Close()
//	for rows.Next() {
//	    fmt.Println(rows.Row())
//	}
//	return rows.Err()
type Rows struct {
	// src is nil once the input is exhausted.
	src     *dsv.Reader
	flatten bool

	closed  bool
	started bool
	pending []string
	fields  []string
	row     []string
	err     error
}

func newRows(src *dsv.Reader, flatten bool) *Rows {
	return &Rows{src: src, flatten: flatten}
}

// Next advances to the next row. It returns false at the end of the rows or
// after a decoding failure, which Err then reports.
func (r *Rows) Next() bool {
	if r.closed {
		r.row = nil
		return false
	}

	if !r.started {
		return r.header()
	}

	if r.flatten {
		for len(r.fields) == 0 {
			rec, ok := r.record()
			if !ok {
				r.row = nil
				return false
			}
			r.fields = rec
		}
		r.row = []string{r.fields[0]}
		r.fields = r.fields[1:]
		return true
	}

	rec, ok := r.record()
	if !ok {
		r.row = nil
		return false
	}
	r.row = rec
	return true
}

func (r *Rows) header() bool {
	r.started = true
	rec, ok := r.read()
	if !ok && r.err != nil {
		r.row = nil
		return false
	}

	n := 1
	if ok {
		r.pending = rec
		if !r.flatten {
			n = len(rec)
		}
	}
	r.row = Header(n)
	return true
}

// record returns the buffered first record or decodes the next one.
func (r *Rows) record() ([]string, bool) {
	if r.pending != nil {
		rec := r.pending
		r.pending = nil
		return rec, true
	}
	return r.read()
}

func (r *Rows) read() ([]string, bool) {
	if r.src == nil {
		return nil, false
	}
	rec, err := r.src.Read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		r.src = nil
		return nil, false
	}
	return rec, true
}

// Row returns the current row. It is valid until the next call to Next.
func (r *Rows) Row() []string {
	return r.row
}

// Err returns the decoding error that stopped iteration, if any.
func (r *Rows) Err() error {
	return r.err
}

// Close stops iteration and releases the decoder. It is safe to call at any
// point and more than once.
func (r *Rows) Close() error {
	r.closed = true
	r.src = nil
	r.pending = nil
	r.fields = nil
	r.row = nil
	return nil
}

// All returns an iterator over the remaining rows. A decoding failure is
// yielded last with a nil row. The rows are closed when iteration ends.
func (r *Rows) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		defer r.Close()
		for r.Next() {
			if !yield(r.Row(), nil) {
				return
			}
		}
		if r.err != nil {
			yield(nil, r.err)
		}
	}
}

// Collect reads every remaining row, header included.
func (r *Rows) Collect() ([][]string, error) {
	var out [][]string
	for row, err := range r.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// Header returns the synthetic column names C1..Cn.
func Header(n int) []string {
	h := make([]string, n)
	for i := range h {
		h[i] = "C" + strconv.Itoa(i+1)
	}
	return h
}
