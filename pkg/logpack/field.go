package logpack

import (
	"math"
	"strconv"
)

/*
Every field value is written as one tag byte followed by a type-specific
payload:

--------------------------------------------------
| tag(1) | payload                               |
--------------------------------------------------
  tagInt     zig-zag varint
  tagFloat   8 bytes, IEEE-754 little-endian
  tagFalse   empty (truth is carried by the tag)
  tagTrue    empty
  tagString  varint length + raw utf-8 bytes
  tagRef     varint index into the stream's interning table
*/
const (
	tagInt byte = iota + 1
	tagFloat
	tagFalse
	tagTrue
	tagString
	tagRef
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

// Value is a closed tagged union over the field value types a record may
// carry: int64, float64, bool or string. The zero Value is the integer 0.
//
// Floats are stored as raw bits, so two Values compare equal with ==
// exactly when their wire forms are identical. NaN round-trips unchanged.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// Int returns a Value holding a signed integer.
func Int(v int64) Value {
	return Value{kind: KindInt, num: uint64(v)}
}

// Float returns a Value holding a float. The exact bit pattern is kept.
func Float(v float64) Value {
	return Value{kind: KindFloat, num: math.Float64bits(v)}
}

// Bool returns a Value holding a boolean.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// String returns a Value holding a string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Kind returns the variant stored in v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer stored in v. Valid only when Kind is KindInt.
func (v Value) Int() int64 {
	return int64(v.num)
}

// Float returns the float stored in v. Valid only when Kind is KindFloat.
func (v Value) Float() float64 {
	return math.Float64frombits(v.num)
}

// Bool returns the boolean stored in v. Valid only when Kind is KindBool.
func (v Value) Bool() bool {
	return v.num == 1
}

// Str returns the string stored in v. Valid only when Kind is KindString.
func (v Value) Str() string {
	return v.str
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindString:
		return v.str
	default:
		return "invalid"
	}
}
