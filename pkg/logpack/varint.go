package logpack

// maxVarintLen is the maximum number of bytes a 64-bit varint can occupy.
const maxVarintLen = 10

// appendUvarint appends v to buf in LEB128 form: little-endian base-128
// groups, high bit set on every byte except the last.
func appendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readUvarint decodes a varint from buf starting at off. It returns the
// value and the number of bytes consumed.
func readUvarint(buf []byte, off int) (uint64, int, error) {
	var (
		v     uint64
		shift uint
	)
	for i := 0; i < maxVarintLen; i++ {
		if off+i >= len(buf) {
			return 0, 0, ErrTruncated
		}
		b := buf[off+i]
		if b < 0x80 {
			// The 10th byte may only carry the single remaining bit.
			if i == maxVarintLen-1 && b > 1 {
				return 0, 0, ErrOverflow
			}
			return v | uint64(b)<<shift, i + 1, nil
		}
		v |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, ErrOverflow
}

// zigzag maps a signed integer to an unsigned one so that values of small
// magnitude, negative included, stay small under varint encoding.
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// unzigzag reverses the mapping done by zigzag.
func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
