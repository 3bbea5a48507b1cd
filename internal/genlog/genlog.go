// Package genlog produces synthetic log records for benchmarking and
// testing the codec. Generation is deterministic for a given seed.
package genlog

import (
	"math/rand"

	"github.com/mr-karan/logpack/pkg/logpack"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Targets repeat heavily across a real log stream, so they are drawn from
// a small fixed pool. Same idea for field keys.
var (
	targets = []string{"net", "auth", "db", "http", "cache", "sched", "gc"}
	keys    = []string{"n", "code", "latency_ms", "user", "ok", "bytes", "region"}
	regions = []string{"eu-west-1", "us-east-1", "ap-south-1"}
)

type Generator struct {
	rng *rand.Rand
	ts  int64
}

// New returns a generator seeded for reproducible output.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		// An arbitrary but fixed epoch keeps runs comparable.
		ts: 1700000000000000000,
	}
}

// Record produces the next synthetic record. Timestamps advance by a
// small random amount each call, mimicking a near-monotonic stream.
func (g *Generator) Record() logpack.Record {
	g.ts += g.rng.Int63n(1_000_000)

	return logpack.Record{
		Timestamp: g.ts,
		Level:     logpack.Level(g.rng.Intn(5)),
		Target:    targets[g.rng.Intn(len(targets))],
		Message:   g.randString(4 + g.rng.Intn(60)),
		Fields:    g.randFields(),
	}
}

// Records produces n records in sequence.
func (g *Generator) Records(n int) []logpack.Record {
	records := make([]logpack.Record, n)
	for i := range records {
		records[i] = g.Record()
	}
	return records
}

func (g *Generator) randFields() []logpack.Field {
	n := g.rng.Intn(4)
	if n == 0 {
		return nil
	}

	fields := make([]logpack.Field, 0, n)
	seen := make(map[string]bool, n)

	for len(fields) < n {
		key := keys[g.rng.Intn(len(keys))]
		if seen[key] {
			continue
		}
		seen[key] = true

		var val logpack.Value
		switch g.rng.Intn(4) {
		case 0:
			val = logpack.Int(g.rng.Int63n(100_000) - 50_000)
		case 1:
			val = logpack.Float(g.rng.Float64() * 1000)
		case 2:
			val = logpack.Bool(g.rng.Intn(2) == 1)
		default:
			val = logpack.String(regions[g.rng.Intn(len(regions))])
		}

		fields = append(fields, logpack.Field{Key: key, Value: val})
	}

	return fields
}

func (g *Generator) randString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[g.rng.Intn(len(charset))]
	}
	return string(b)
}
