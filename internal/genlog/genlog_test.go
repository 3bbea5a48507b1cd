package genlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	assert := assert.New(t)

	a := New(42).Records(100)
	b := New(42).Records(100)

	assert.Len(a, 100)
	for i := range a {
		assert.True(a[i].Equal(b[i]), "record %d differs between runs", i)
	}
}

func TestMonotonicTimestamps(t *testing.T) {
	assert := assert.New(t)

	records := New(7).Records(1000)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(records[i].Timestamp, records[i-1].Timestamp)
	}
}

func TestTargetsFromPool(t *testing.T) {
	assert := assert.New(t)

	pool := make(map[string]bool, len(targets))
	for _, tg := range targets {
		pool[tg] = true
	}

	for _, r := range New(1).Records(200) {
		assert.True(pool[r.Target], "unexpected target %q", r.Target)
	}
}

func TestUniqueFieldKeys(t *testing.T) {
	assert := assert.New(t)

	for _, r := range New(3).Records(500) {
		seen := make(map[string]bool, len(r.Fields))
		for _, f := range r.Fields {
			assert.False(seen[f.Key], "duplicate key %q", f.Key)
			seen[f.Key] = true
		}
	}
}
