package logpack

// Options represents configuration options for a codec.
type Options struct {
	lenientTrailing bool   // Ignore decodable bytes left after the declared record count.
	policy          Policy // Compression policy applied by Compress/Decompress.
}

// Config is a function on the Options for a codec.
// These are used to configure particular options.
type Config func(*Options) error

func DefaultOptions() *Options {
	return &Options{
		lenientTrailing: false,
		policy:          None,
	}
}

// WithLenientTrailing makes Decode ignore trailing bytes after the last
// declared record instead of failing. Strict is the default.
func WithLenientTrailing() Config {
	return func(o *Options) error {
		o.lenientTrailing = true
		return nil
	}
}

// WithCompression sets the compression policy used by Compress and
// Decompress. The stream format itself is unaffected.
func WithCompression(p Policy) Config {
	return func(o *Options) error {
		if p > Max {
			return ErrUnknownPolicy
		}
		o.policy = p
		return nil
	}
}

// Codec encodes and decodes streams of log records. A Codec holds only
// configuration; all per-stream state (interning table, timestamp cursor)
// lives inside a single Encode or Decode call, so one Codec may be used
// from multiple goroutines encoding or decoding independent streams.
type Codec struct {
	opts *Options
}

// New initialises a codec.
func New(cfgs ...Config) (*Codec, error) {
	opts := DefaultOptions()
	for _, cfg := range cfgs {
		if err := cfg(opts); err != nil {
			return nil, err
		}
	}
	return &Codec{opts: opts}, nil
}

// Encode serialises records into a single contiguous stream buffer.
// Encoding well-formed in-memory records cannot fail.
func (c *Codec) Encode(records []Record) []byte {
	// Rough per-record estimate to keep append from resizing early on.
	enc := newEncoder(16 + len(records)*48)
	return enc.stream(records)
}

// Decode parses a stream buffer produced by Encode and returns the records
// in order. Decoding halts at the first malformed byte; errors carry the
// byte offset and record index and wrap one of the sentinel errors of this
// package.
func (c *Codec) Decode(buf []byte) ([]Record, error) {
	dec := newDecoder(buf)
	return dec.stream(c.opts.lenientTrailing)
}
