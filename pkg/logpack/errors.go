package logpack

import "errors"

var (
	ErrTruncated           = errors.New("unexpected end of input")
	ErrOverflow            = errors.New("varint exceeds 64 bits")
	ErrInvalidTag          = errors.New("invalid tag byte")
	ErrInvalidUTF8         = errors.New("string bytes are not valid utf-8")
	ErrBadMagic            = errors.New("missing magic bytes: not a logpack stream")
	ErrVersion             = errors.New("unsupported format version")
	ErrRecordCountMismatch = errors.New("record count does not match stream header")
	ErrTrailingData        = errors.New("trailing data after final record")
	ErrCompression         = errors.New("error compressing stream")
	ErrDecompression       = errors.New("error decompressing stream")
)
