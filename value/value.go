// Package value defines the tagged runtime value shared by the compiler's
// constant pool and the VM's operand stack. It generalizes the teacher's
// untyped any-based constants pool (compiler.Bytecode.ConstantsPool []any)
// into an explicit, variant-typed sum — the shape original_source's
// value.rs Value(f64) newtype would have grown into past the chapter it
// was retrieved from.
package value

import (
	"fmt"
	"strconv"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

// Value is a small, copyable tagged union. It is never boxed behind an
// interface or pointer: the VM's fixed-size stack array stores these
// inline, so pushing and popping allocates nothing.
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  string
}

// Nil is the singular nil value.
var Nil = Value{kind: KindNil}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number constructs a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String constructs a string value. Every call allocates a fresh, distinct
// Value even when given an equal Go string — the language has no string
// interning (see Non-goals).
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }

// AsBool returns the boolean payload. Only meaningful when IsBool is true.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the numeric payload. Only meaningful when IsNumber is true.
func (v Value) AsNumber() float64 { return v.num }

// AsString returns the string payload. Only meaningful when IsString is true.
func (v Value) AsString() string { return v.str }

// Equal implements the structural, variant-typed equality of §3: values of
// different variants are never equal, and numeric equality follows
// IEEE-754 (so NaN != NaN).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	default:
		return false
	}
}

// IsFalsey reports whether v is considered false by logical negation:
// exactly Nil and Bool(false). Every other value, including Number(0.0)
// and the empty string, is truthy.
func (v Value) IsFalsey() bool {
	return v.kind == KindNil || (v.kind == KindBool && !v.b)
}

// String renders v the way OP_RETURN prints the top of stack.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.kind)
	}
}

// TypeName names v's variant. Nothing in this module calls it: the VM's
// runtime errors ("Operands must be numbers.") name only the expected type,
// and the disassembler prints values, not their types.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}
