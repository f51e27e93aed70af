package textfn

import "fmt"

// UsageError reports a call with missing or unrecognized arguments.
type UsageError struct {
	// Func is the operator name.
	Func string
	// Msg describes the problem.
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Func, e.Msg)
}

// OperatorError reports a failure inside an operator that is not a null
// result, such as a malformed date pattern.
type OperatorError struct {
	Func string
	Err  error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Func, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperatorError) Unwrap() error {
	return e.Err
}

func noInput(fn string) error {
	return &UsageError{Func: fn, Msg: "no input"}
}

func unknownArgument(fn string, rest []string) error {
	return &UsageError{Func: fn, Msg: fmt.Sprintf("unknown argument %q", rest[0])}
}
