package logpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Policy selects how hard the optional compression pass works. It maps
// onto DEFLATE level parameters; the set is closed and small on purpose.
type Policy uint8

const (
	None Policy = iota
	Fast
	Balanced
	Max
)

// ErrUnknownPolicy is returned for a policy outside the closed set.
var ErrUnknownPolicy = errors.New("unknown compression policy")

func (p Policy) String() string {
	switch p {
	case None:
		return "none"
	case Fast:
		return "fast"
	case Balanced:
		return "balanced"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as found in config files.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "none", "":
		return None, nil
	case "fast":
		return Fast, nil
	case "balanced":
		return Balanced, nil
	case "max":
		return Max, nil
	default:
		return None, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// level maps the policy to a DEFLATE compression level.
func (p Policy) level() int {
	switch p {
	case Fast:
		return flate.BestSpeed
	case Max:
		return flate.BestCompression
	default:
		return 5
	}
}

// Compress runs the encoded stream through DEFLATE at the configured
// policy's level. With policy None the input is returned unchanged. The
// stream format is orthogonal to compression: the caller is responsible
// for recording out-of-band whether a buffer needs Decompress before
// Decode.
func (c *Codec) Compress(buf []byte) ([]byte, error) {
	if c.opts.policy == None {
		return buf, nil
	}

	var out bytes.Buffer
	out.Grow(len(buf) / 2)

	fw, err := flate.NewWriter(&out, c.opts.policy.level())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompression, err)
	}
	if _, err := fw.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompression, err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompression, err)
	}

	return out.Bytes(), nil
}

// Decompress reverses Compress under the same policy.
func (c *Codec) Decompress(buf []byte) ([]byte, error) {
	if c.opts.policy == None {
		return buf, nil
	}

	fr := flate.NewReader(bytes.NewReader(buf))
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecompression, err)
	}

	return out, nil
}
