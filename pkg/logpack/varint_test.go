package logpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUvarintRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{300, 2},
		{16383, 2},
		{16384, 3},
		{1 << 32, 5},
		{math.MaxUint64, 10},
	}

	for _, c := range cases {
		buf := appendUvarint(nil, c.v)
		assert.Len(buf, c.size, "encoded size for %d", c.v)

		got, n, err := readUvarint(buf, 0)
		assert.NoError(err)
		assert.Equal(c.v, got)
		assert.Equal(c.size, n)
	}
}

func TestUvarintOffset(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0xde, 0xad}
	buf = appendUvarint(buf, 300)

	got, n, err := readUvarint(buf, 2)
	assert.NoError(err)
	assert.Equal(uint64(300), got)
	assert.Equal(2, n)
}

func TestUvarintTruncated(t *testing.T) {
	assert := assert.New(t)

	// Continuation bit set on the final available byte.
	for _, buf := range [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
	} {
		_, _, err := readUvarint(buf, 0)
		assert.ErrorIs(err, ErrTruncated, "buf %v", buf)
	}
}

func TestUvarintOverflow(t *testing.T) {
	assert := assert.New(t)

	// An 11th byte would be required.
	long := make([]byte, 11)
	for i := range long {
		long[i] = 0xff
	}
	_, _, err := readUvarint(long, 0)
	assert.ErrorIs(err, ErrOverflow)

	// Ten bytes, but the last carries more than the one remaining bit.
	wide := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	_, _, err = readUvarint(wide, 0)
	assert.ErrorIs(err, ErrOverflow)
}

func TestZigzag(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		v int64
		u uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, c := range cases {
		assert.Equal(c.u, zigzag(c.v), "zigzag(%d)", c.v)
		assert.Equal(c.v, unzigzag(c.u), "unzigzag(%d)", c.u)
	}
}
