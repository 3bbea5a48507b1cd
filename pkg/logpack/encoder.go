package logpack

import "encoding/binary"

/*
Stream layout:

----------------------------------------------------------
| 'L' 'P' | version(1) | record_count(varint) | records...|
----------------------------------------------------------

Record layout:

----------------------------------------------------------------------
| ts_delta(varint) | level(1) | target | message | field_count(varint)|
| key value | key value | ...                                        |
----------------------------------------------------------------------

The timestamp delta is the zig-zag encoded difference against the previous
record's timestamp; the first record's "previous" is zero, so it carries
the absolute value through the same code path. Target and field keys are
interned; the message is always a literal since it rarely repeats. String
field values may reference an existing table entry but never register one,
keeping encoder and decoder tables in lockstep.
*/

var magic = [2]byte{'L', 'P'}

const formatVersion byte = 0x01

// stringMode controls how a string position interacts with the interning
// table.
type stringMode uint8

const (
	// literalString is always written in full and never touches the table.
	literalString stringMode = iota
	// internString probes the table and registers first occurrences.
	internString
	// refString probes the table but never registers.
	refString
)

// encoder carries the per-stream state of one Encode call: the output
// buffer, the interning table and the previous-timestamp cursor.
type encoder struct {
	buf    []byte
	table  *internTable
	prevTS int64
}

func newEncoder(hint int) *encoder {
	return &encoder{
		buf:   make([]byte, 0, hint),
		table: newInternTable(),
	}
}

func (e *encoder) stream(records []Record) []byte {
	e.buf = append(e.buf, magic[0], magic[1], formatVersion)
	e.buf = appendUvarint(e.buf, uint64(len(records)))

	for i := range records {
		e.record(&records[i])
	}

	return e.buf
}

func (e *encoder) record(r *Record) {
	delta := r.Timestamp - e.prevTS
	e.prevTS = r.Timestamp

	e.buf = appendUvarint(e.buf, zigzag(delta))
	e.buf = append(e.buf, byte(r.Level))

	e.string(r.Target, internString)
	e.string(r.Message, literalString)

	e.buf = appendUvarint(e.buf, uint64(len(r.Fields)))
	for _, f := range r.Fields {
		e.string(f.Key, internString)
		e.value(f.Value)
	}
}

func (e *encoder) string(s string, mode stringMode) {
	if mode != literalString {
		if idx, ok := e.table.lookup(s); ok {
			e.buf = append(e.buf, tagRef)
			e.buf = appendUvarint(e.buf, idx)
			return
		}
		if mode == internString {
			e.table.add(s)
		}
	}

	e.buf = append(e.buf, tagString)
	e.buf = appendUvarint(e.buf, uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) value(v Value) {
	switch v.kind {
	case KindInt:
		e.buf = append(e.buf, tagInt)
		e.buf = appendUvarint(e.buf, zigzag(v.Int()))
	case KindFloat:
		e.buf = append(e.buf, tagFloat)
		e.buf = binary.LittleEndian.AppendUint64(e.buf, v.num)
	case KindBool:
		if v.Bool() {
			e.buf = append(e.buf, tagTrue)
		} else {
			e.buf = append(e.buf, tagFalse)
		}
	case KindString:
		e.string(v.str, refString)
	}
}
