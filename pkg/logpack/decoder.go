package logpack

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// decoder carries the per-stream state of one Decode call. It mirrors the
// encoder: same interning table growth, same timestamp cursor, so indices
// and deltas line up without the table ever being transmitted.
type decoder struct {
	buf    []byte
	off    int
	table  *internTable
	prevTS int64
}

func newDecoder(buf []byte) *decoder {
	return &decoder{
		buf:   buf,
		table: newInternTable(),
	}
}

func (d *decoder) stream(lenient bool) ([]Record, error) {
	if len(d.buf) < len(magic)+1 {
		return nil, fmt.Errorf("stream header: %w", ErrTruncated)
	}
	if d.buf[0] != magic[0] || d.buf[1] != magic[1] {
		return nil, ErrBadMagic
	}
	if d.buf[2] != formatVersion {
		return nil, fmt.Errorf("version %d: %w", d.buf[2], ErrVersion)
	}
	d.off = len(magic) + 1

	count, err := d.uvarint()
	if err != nil {
		return nil, fmt.Errorf("record count: %w", err)
	}

	// Every record body occupies at least one byte, so a count larger
	// than the remaining buffer cannot be satisfied. This also bounds the
	// allocation below against corrupt headers.
	if count > uint64(len(d.buf)-d.off) {
		return nil, fmt.Errorf("header declares %d records, %d bytes remain: %w",
			count, len(d.buf)-d.off, ErrRecordCountMismatch)
	}

	records := make([]Record, 0, count)
	for i := uint64(0); i < count; i++ {
		if d.off == len(d.buf) {
			return nil, fmt.Errorf("decoded %d of %d records: %w", i, count, ErrRecordCountMismatch)
		}
		r, err := d.record()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}

	if !lenient && d.off != len(d.buf) {
		return nil, fmt.Errorf("%d bytes after record %d: %w", len(d.buf)-d.off, count, ErrTrailingData)
	}

	return records, nil
}

func (d *decoder) record() (Record, error) {
	var r Record

	du, err := d.uvarint()
	if err != nil {
		return r, fmt.Errorf("timestamp delta: %w", err)
	}
	d.prevTS += unzigzag(du)
	r.Timestamp = d.prevTS

	if d.off >= len(d.buf) {
		return r, fmt.Errorf("level at offset %d: %w", d.off, ErrTruncated)
	}
	r.Level = Level(d.buf[d.off])
	d.off++
	if !r.Level.valid() {
		return r, fmt.Errorf("level byte %d at offset %d: %w", r.Level, d.off-1, ErrInvalidTag)
	}

	if r.Target, err = d.string(internString); err != nil {
		return r, fmt.Errorf("target: %w", err)
	}
	if r.Message, err = d.string(literalString); err != nil {
		return r, fmt.Errorf("message: %w", err)
	}

	count, err := d.uvarint()
	if err != nil {
		return r, fmt.Errorf("field count: %w", err)
	}
	// A field is at minimum a key tag and a value tag.
	if count > uint64(len(d.buf)-d.off)/2 {
		return r, fmt.Errorf("field count %d at offset %d: %w", count, d.off, ErrTruncated)
	}

	if count > 0 {
		r.Fields = make([]Field, 0, count)
	}
	for i := uint64(0); i < count; i++ {
		var f Field
		if f.Key, err = d.string(internString); err != nil {
			return r, fmt.Errorf("field %d key: %w", i, err)
		}
		if f.Value, err = d.value(); err != nil {
			return r, fmt.Errorf("field %d value: %w", i, err)
		}
		r.Fields = append(r.Fields, f)
	}

	return r, nil
}

// string decodes one tagged string position. Literals decoded in an
// interning-eligible position are registered so the table mirrors the
// encoder's.
func (d *decoder) string(mode stringMode) (string, error) {
	tag, err := d.tag()
	if err != nil {
		return "", err
	}

	switch tag {
	case tagString:
		s, err := d.literal()
		if err != nil {
			return "", err
		}
		if mode == internString {
			d.table.add(s)
		}
		return s, nil
	case tagRef:
		if mode == literalString {
			break
		}
		return d.ref()
	}
	return "", fmt.Errorf("tag %#02x at offset %d: %w", tag, d.off-1, ErrInvalidTag)
}

func (d *decoder) value() (Value, error) {
	tag, err := d.tag()
	if err != nil {
		return Value{}, err
	}

	switch tag {
	case tagInt:
		u, err := d.uvarint()
		if err != nil {
			return Value{}, err
		}
		return Int(unzigzag(u)), nil
	case tagFloat:
		if len(d.buf)-d.off < 8 {
			return Value{}, fmt.Errorf("float at offset %d: %w", d.off, ErrTruncated)
		}
		bits := binary.LittleEndian.Uint64(d.buf[d.off:])
		d.off += 8
		return Value{kind: KindFloat, num: bits}, nil
	case tagFalse:
		return Bool(false), nil
	case tagTrue:
		return Bool(true), nil
	case tagString:
		s, err := d.literal()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case tagRef:
		s, err := d.ref()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	default:
		return Value{}, fmt.Errorf("tag %#02x at offset %d: %w", tag, d.off-1, ErrInvalidTag)
	}
}

func (d *decoder) tag() (byte, error) {
	if d.off >= len(d.buf) {
		return 0, fmt.Errorf("tag at offset %d: %w", d.off, ErrTruncated)
	}
	t := d.buf[d.off]
	d.off++
	return t, nil
}

// literal decodes a length-prefixed utf-8 string body.
func (d *decoder) literal() (string, error) {
	n, err := d.uvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(len(d.buf)-d.off) {
		return "", fmt.Errorf("string of %d bytes at offset %d: %w", n, d.off, ErrTruncated)
	}
	b := d.buf[d.off : d.off+int(n)]
	if !utf8.Valid(b) {
		return "", fmt.Errorf("string at offset %d: %w", d.off, ErrInvalidUTF8)
	}
	d.off += int(n)
	return string(b), nil
}

// ref resolves an interning-table reference.
func (d *decoder) ref() (string, error) {
	idx, err := d.uvarint()
	if err != nil {
		return "", err
	}
	s, ok := d.table.get(idx)
	if !ok {
		return "", fmt.Errorf("intern reference %d out of range at offset %d: %w", idx, d.off, ErrInvalidTag)
	}
	return s, nil
}

func (d *decoder) uvarint() (uint64, error) {
	v, n, err := readUvarint(d.buf, d.off)
	if err != nil {
		return 0, fmt.Errorf("varint at offset %d: %w", d.off, err)
	}
	d.off += n
	return v, nil
}
