package main

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mr-karan/logpack/pkg/logpack"
)

// result holds one contender's measurements.
type result struct {
	encode time.Duration
	decode time.Duration
	size   int
}

// plainRecord mirrors logpack.Record with exported fields only, so that
// reflection-based serializers can see the full record.
type plainRecord struct {
	Timestamp int64
	Level     uint8
	Target    string
	Message   string
	Fields    []plainField `json:",omitempty"`
}

type plainField struct {
	Key   string
	Value plainValue
}

// plainValue flattens the tagged union: Num carries integer values and
// float bit patterns, Str carries strings.
type plainValue struct {
	Kind uint8
	Num  uint64 `json:",omitempty"`
	Str  string `json:",omitempty"`
}

func toPlain(records []logpack.Record) []plainRecord {
	out := make([]plainRecord, len(records))
	for i, r := range records {
		p := plainRecord{
			Timestamp: r.Timestamp,
			Level:     uint8(r.Level),
			Target:    r.Target,
			Message:   r.Message,
		}
		if len(r.Fields) > 0 {
			p.Fields = make([]plainField, len(r.Fields))
			for j, f := range r.Fields {
				p.Fields[j] = plainField{Key: f.Key, Value: toPlainValue(f.Value)}
			}
		}
		out[i] = p
	}
	return out
}

func toPlainValue(v logpack.Value) plainValue {
	switch v.Kind() {
	case logpack.KindInt:
		return plainValue{Kind: uint8(logpack.KindInt), Num: uint64(v.Int())}
	case logpack.KindFloat:
		return plainValue{Kind: uint8(logpack.KindFloat), Num: math.Float64bits(v.Float())}
	case logpack.KindBool:
		var n uint64
		if v.Bool() {
			n = 1
		}
		return plainValue{Kind: uint8(logpack.KindBool), Num: n}
	default:
		return plainValue{Kind: uint8(logpack.KindString), Str: v.Str()}
	}
}

func runJSON(plain []plainRecord) (result, error) {
	var res result

	start := time.Now()
	buf, err := json.Marshal(plain)
	if err != nil {
		return res, err
	}
	res.encode = time.Since(start)
	res.size = len(buf)

	start = time.Now()
	var decoded []plainRecord
	if err := json.Unmarshal(buf, &decoded); err != nil {
		return res, err
	}
	res.decode = time.Since(start)

	if !reflect.DeepEqual(plain, decoded) {
		return res, fmt.Errorf("json round-trip mismatch")
	}
	return res, nil
}

func runGob(plain []plainRecord) (result, error) {
	var (
		res result
		buf bytes.Buffer
	)

	start := time.Now()
	if err := gob.NewEncoder(&buf).Encode(plain); err != nil {
		return res, err
	}
	res.encode = time.Since(start)
	res.size = buf.Len()

	start = time.Now()
	var decoded []plainRecord
	if err := gob.NewDecoder(&buf).Decode(&decoded); err != nil {
		return res, err
	}
	res.decode = time.Since(start)

	if !reflect.DeepEqual(plain, decoded) {
		return res, fmt.Errorf("gob round-trip mismatch")
	}
	return res, nil
}

func runLogpack(codec *logpack.Codec, records []logpack.Record) (result, error) {
	var res result

	start := time.Now()
	buf := codec.Encode(records)
	res.encode = time.Since(start)
	res.size = len(buf)

	start = time.Now()
	decoded, err := codec.Decode(buf)
	if err != nil {
		return res, err
	}
	res.decode = time.Since(start)

	return res, verify(records, decoded)
}

func runLogpackCompressed(codec *logpack.Codec, records []logpack.Record) (result, error) {
	var res result

	start := time.Now()
	buf, err := codec.Compress(codec.Encode(records))
	if err != nil {
		return res, err
	}
	res.encode = time.Since(start)
	res.size = len(buf)

	start = time.Now()
	raw, err := codec.Decompress(buf)
	if err != nil {
		return res, err
	}
	decoded, err := codec.Decode(raw)
	if err != nil {
		return res, err
	}
	res.decode = time.Since(start)

	return res, verify(records, decoded)
}

func verify(want, got []logpack.Record) error {
	if len(want) != len(got) {
		return fmt.Errorf("round-trip mismatch: %d records in, %d out", len(want), len(got))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			return fmt.Errorf("round-trip mismatch at record %d", i)
		}
	}
	return nil
}
