package logpack_test

import (
	"testing"

	"github.com/mr-karan/logpack/internal/genlog"
	"github.com/mr-karan/logpack/pkg/logpack"
)

const benchRecords = 10_000

func BenchmarkEncode(b *testing.B) {
	records := genlog.New(42).Records(benchRecords)

	c, err := logpack.New()
	if err != nil {
		b.Fatal(err)
	}

	buf := c.Encode(records)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Encode(records)
	}
}

func BenchmarkDecode(b *testing.B) {
	records := genlog.New(42).Records(benchRecords)

	c, err := logpack.New()
	if err != nil {
		b.Fatal(err)
	}

	buf := c.Encode(records)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompress(b *testing.B) {
	records := genlog.New(42).Records(benchRecords)

	scenarios := map[string]logpack.Policy{
		"Fast":     logpack.Fast,
		"Balanced": logpack.Balanced,
		"Max":      logpack.Max,
	}

	for sc, policy := range scenarios {
		c, err := logpack.New(logpack.WithCompression(policy))
		if err != nil {
			b.Fatal(err)
		}

		buf := c.Encode(records)

		b.Run(sc, func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				packed, err := c.Compress(buf)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := c.Decompress(packed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
