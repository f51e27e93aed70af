package textfn_test

import (
	"math"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/textfn"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		in      any
		typ     textfn.ValueType
		text    string
		numeric bool
	}{
		{nil, textfn.TypeNull, "", false},
		{"abc", textfn.TypeText, "abc", false},
		{[]byte("raw"), textfn.TypeText, "raw", false},
		{42, textfn.TypeInteger, "42", true},
		{int64(-7), textfn.TypeInteger, "-7", true},
		{uint16(9), textfn.TypeInteger, "9", true},
		{uint64(math.MaxInt64), textfn.TypeInteger, "9223372036854775807", true},
		{uint64(math.MaxUint64), textfn.TypeReal, "1.8446744073709552e+19", true},
		{2.5, textfn.TypeReal, "2.5", true},
		{100.0, textfn.TypeReal, "100.0", true},
		{true, textfn.TypeInteger, "1", true},
		{textfn.Text("kept"), textfn.TypeText, "kept", false},
	}

	for _, tt := range tests {
		v := textfn.ValueOf(tt.in)
		if v.Type() != tt.typ {
			t.Errorf("ValueOf(%v).Type() = %v, want %v", tt.in, v.Type(), tt.typ)
		}
		if v.String() != tt.text {
			t.Errorf("ValueOf(%v).String() = %q, want %q", tt.in, v.String(), tt.text)
		}
		if v.IsNumeric() != tt.numeric {
			t.Errorf("ValueOf(%v).IsNumeric() = %v", tt.in, v.IsNumeric())
		}
	}
}

func TestValueAny(t *testing.T) {
	if textfn.Null().Any() != nil {
		t.Error("Null().Any() != nil")
	}
	if got := textfn.Int(3).Any(); got != int64(3) {
		t.Errorf("Int(3).Any() = %#v", got)
	}
	if got := textfn.Real(1.5).Any(); got != 1.5 {
		t.Errorf("Real(1.5).Any() = %#v", got)
	}
	if got := textfn.Text("x").Any(); got != "x" {
		t.Errorf("Text(x).Any() = %#v", got)
	}
	var zero textfn.Value
	if !zero.IsNull() {
		t.Error("zero Value should be null")
	}
	if textfn.TypeReal.String() != "real" {
		t.Errorf("TypeReal.String() = %q", textfn.TypeReal.String())
	}
}
