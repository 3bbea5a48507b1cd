package logpack

// Level is the severity of a log record. It occupies a single byte on the
// wire.
type Level uint8

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// valid reports whether l is a member of the closed level set.
func (l Level) valid() bool {
	return l <= Error
}

// Record is a single log event.
//
// Timestamps are nanoseconds and assumed to be near-monotonic within a
// stream; the codec delta-encodes them, so out-of-order records still
// round-trip correctly but cost more bytes. Target is the module or source
// name and is expected to repeat heavily across a stream; it is interned.
// Message is free-form text and always written literally. Fields keep their
// insertion order through a round-trip.
//
// Records are never mutated by the codec.
type Record struct {
	Timestamp int64
	Level     Level
	Target    string
	Message   string
	Fields    []Field
}

// Field is one key-value pair attached to a record.
type Field struct {
	Key   string
	Value Value
}

// Equal reports whether two records are identical field-for-field,
// including field order. Float values compare by IEEE-754 bit pattern.
func (r Record) Equal(other Record) bool {
	if r.Timestamp != other.Timestamp ||
		r.Level != other.Level ||
		r.Target != other.Target ||
		r.Message != other.Message ||
		len(r.Fields) != len(other.Fields) {
		return false
	}
	for i := range r.Fields {
		if r.Fields[i] != other.Fields[i] {
			return false
		}
	}
	return true
}
