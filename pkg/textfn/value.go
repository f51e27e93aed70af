package textfn

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// ValueType is the storage class of a Value.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeInteger
	TypeReal
	TypeText
)

// String returns the lowercase name of the type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInteger:
		return "integer"
	case TypeReal:
		return "real"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is an operator argument or result.
//
// The zero Value is null. A null result means "no value" and is distinct
// from a failure, which is always reported through an error.
type Value struct {
	typ  ValueType
	i    int64
	f    float64
	text string
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{typ: TypeText, text: s}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{typ: TypeInteger, i: i}
}

// Real returns a real value.
func Real(f float64) Value {
	return Value{typ: TypeReal, f: f}
}

// ValueOf converts a Go value. nil becomes null, integers become Int,
// floats become Real, bools become Int 0 or 1, and everything else is text.
// Unsigned integers beyond the int64 range become Real.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return Text(x)
	case []byte:
		return Text(string(x))
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return unsigned(x)
	case float32:
		return Real(float64(x))
	case float64:
		return Real(x)
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case fmt.Stringer:
		return Text(x.String())
	default:
		return Text(fmt.Sprint(v))
	}
}

// unsigned returns u as an integer, or as a real when it exceeds the int64 range.
func unsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Real(float64(u))
	}
	return Int(int64(u))
}

// Values converts each Go value with ValueOf.
func Values(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = ValueOf(v)
	}
	return out
}

// Type returns the storage class.
func (v Value) Type() ValueType {
	return v.typ
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// IsNumeric reports whether v is an integer or a real.
func (v Value) IsNumeric() bool {
	return v.typ == TypeInteger || v.typ == TypeReal
}

// String returns the text form of v. Null is the empty string.
func (v Value) String() string {
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeReal:
		return dsv.FormatFloat(v.f)
	case TypeText:
		return v.text
	default:
		return ""
	}
}

// Any returns v as nil, int64, float64 or string.
func (v Value) Any() any {
	switch v.typ {
	case TypeInteger:
		return v.i
	case TypeReal:
		return v.f
	case TypeText:
		return v.text
	default:
		return nil
	}
}

func anyNull(args []Value) bool {
	for _, a := range args {
		if a.IsNull() {
			return true
		}
	}
	return false
}
