package textfn

import (
	"sort"
	"strings"
)

// Function is an operator that can be registered with a host.
type Function interface {
	// Name returns the function name
	Name() string

	// NumArgs returns the number of arguments (-1 for variadic)
	NumArgs() int
}

// ScalarFunc is an operator that returns one value.
type ScalarFunc struct {
	name    string
	numArgs int
	fn      func(args ...Value) (Value, error)
}

// NewScalarFunc creates a new scalar function.
func NewScalarFunc(name string, numArgs int, fn func(args ...Value) (Value, error)) *ScalarFunc {
	return &ScalarFunc{name: name, numArgs: numArgs, fn: fn}
}

func (f *ScalarFunc) Name() string {
	return f.name
}

func (f *ScalarFunc) NumArgs() int {
	return f.numArgs
}

// Call invokes the function.
func (f *ScalarFunc) Call(args []Value) (Value, error) {
	if f.numArgs >= 0 && len(args) != f.numArgs {
		return Null(), &UsageError{Func: f.name, Msg: "wrong number of arguments"}
	}
	return f.fn(args...)
}

// MultisetFunc is an operator that returns rows.
type MultisetFunc struct {
	name    string
	numArgs int
	fn      func(args ...Value) (*Rows, error)
}

// NewMultisetFunc creates a new multiset function.
func NewMultisetFunc(name string, numArgs int, fn func(args ...Value) (*Rows, error)) *MultisetFunc {
	return &MultisetFunc{name: name, numArgs: numArgs, fn: fn}
}

func (f *MultisetFunc) Name() string {
	return f.name
}

func (f *MultisetFunc) NumArgs() int {
	return f.numArgs
}

// Call invokes the function.
func (f *MultisetFunc) Call(args []Value) (*Rows, error) {
	if f.numArgs >= 0 && len(args) != f.numArgs {
		return nil, &UsageError{Func: f.name, Msg: "wrong number of arguments"}
	}
	return f.fn(args...)
}

// Registry holds registered functions. Names are case-insensitive.
type Registry struct {
	functions map[string]Function
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]Function)}
}

// Register adds fn, replacing any function of the same name.
func (r *Registry) Register(fn Function) {
	r.functions[strings.ToLower(fn.Name())] = fn
}

// Lookup finds a function by name.
func (r *Registry) Lookup(name string) (Function, bool) {
	fn, ok := r.functions[strings.ToLower(name)]
	return fn, ok
}

// Functions returns every registered function sorted by name.
func (r *Registry) Functions() []Function {
	result := make([]Function, 0, len(r.functions))
	for _, fn := range r.functions {
		result = append(result, fn)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Scalars returns the scalar functions sorted by name.
func (r *Registry) Scalars() []*ScalarFunc {
	var result []*ScalarFunc
	for _, fn := range r.Functions() {
		if s, ok := fn.(*ScalarFunc); ok {
			result = append(result, s)
		}
	}
	return result
}

// Multisets returns the multiset functions sorted by name.
func (r *Registry) Multisets() []*MultisetFunc {
	var result []*MultisetFunc
	for _, fn := range r.Functions() {
		if m, ok := fn.(*MultisetFunc); ok {
			result = append(result, m)
		}
	}
	return result
}

// DefaultRegistry returns a registry with strsplit, strsplitv, strjoin and
// dateformat.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewMultisetFunc("strsplit", -1, StrSplit))
	r.Register(NewMultisetFunc("strsplitv", -1, StrSplitV))
	r.Register(NewScalarFunc("strjoin", -1, StrJoin))
	r.Register(NewScalarFunc("dateformat", -1, DateFormat))
	return r
}
