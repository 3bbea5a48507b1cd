package logpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		v    Value
	}{
		{"int_zero", Int(0)},
		{"int_positive", Int(42)},
		{"int_negative", Int(-500)},
		{"int_min", Int(math.MinInt64)},
		{"float", Float(3.14159)},
		{"float_neg_zero", Float(math.Copysign(0, -1))},
		{"float_nan", Float(math.NaN())},
		{"bool_true", Bool(true)},
		{"bool_false", Bool(false)},
		{"string", String("hello")},
		{"string_empty", String("")},
		{"string_unicode", String("héllo wörld ✓")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc := newEncoder(0)
			enc.value(c.v)

			dec := newDecoder(enc.buf)
			got, err := dec.value()
			assert.NoError(err)
			assert.Equal(c.v, got)
			assert.Equal(len(enc.buf), dec.off, "value not fully consumed")
		})
	}
}

func TestValueAccessors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KindInt, Int(7).Kind())
	assert.Equal(int64(7), Int(7).Int())

	assert.Equal(KindFloat, Float(1.5).Kind())
	assert.Equal(1.5, Float(1.5).Float())

	assert.Equal(KindBool, Bool(true).Kind())
	assert.True(Bool(true).Bool())
	assert.False(Bool(false).Bool())

	assert.Equal(KindString, String("x").Kind())
	assert.Equal("x", String("x").Str())

	// Display form.
	assert.Equal("7", Int(7).String())
	assert.Equal("1.5", Float(1.5).String())
	assert.Equal("true", Bool(true).String())
	assert.Equal("x", String("x").String())
}

func TestValueBoolInTag(t *testing.T) {
	assert := assert.New(t)

	// Truth lives entirely in the tag byte: no payload.
	enc := newEncoder(0)
	enc.value(Bool(true))
	enc.value(Bool(false))
	assert.Equal([]byte{tagTrue, tagFalse}, enc.buf)
}

func TestValueDecodeInvalidTag(t *testing.T) {
	assert := assert.New(t)

	dec := newDecoder([]byte{0x7f})
	_, err := dec.value()
	assert.ErrorIs(err, ErrInvalidTag)
}

func TestValueDecodeTruncated(t *testing.T) {
	assert := assert.New(t)

	cases := map[string][]byte{
		"empty":         {},
		"float_partial": {tagFloat, 0x01, 0x02, 0x03},
		"int_partial":   {tagInt, 0x80},
		"string_short":  {tagString, 0x05, 'a', 'b'},
	}

	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			dec := newDecoder(buf)
			_, err := dec.value()
			assert.ErrorIs(err, ErrTruncated)
		})
	}
}

func TestStringDecodeInvalidUTF8(t *testing.T) {
	assert := assert.New(t)

	dec := newDecoder([]byte{tagString, 0x02, 0xff, 0xfe})
	_, err := dec.string(literalString)
	assert.ErrorIs(err, ErrInvalidUTF8)
}

func TestStringLiteralOnlyPosition(t *testing.T) {
	assert := assert.New(t)

	// A reference in an always-literal position is malformed.
	dec := newDecoder([]byte{tagRef, 0x00})
	_, err := dec.string(literalString)
	assert.ErrorIs(err, ErrInvalidTag)
}
