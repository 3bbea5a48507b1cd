package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mr-karan/logpack/internal/genlog"
	"github.com/mr-karan/logpack/pkg/logpack"
)

var (
	// Version of the build. This is injected at build-time.
	buildString = "unknown"
)

func main() {
	ko, err := initConfig()
	if err != nil {
		fmt.Println("error loading config:", err)
		os.Exit(1)
	}

	lo := initLogger(ko)
	lo.Info("starting logpack bench", "version", buildString)

	policy, err := logpack.ParsePolicy(ko.String("bench.compression"))
	if err != nil {
		lo.Fatal("invalid compression policy", "error", err)
	}

	var (
		count   = ko.Int("bench.records")
		workers = ko.Int("bench.workers")
		seed    = ko.Int64("bench.seed")
	)

	start := time.Now()
	records := generate(count, workers, seed)
	lo.Info("generated records", "count", len(records), "took", time.Since(start).String())

	codec, err := logpack.New(logpack.WithCompression(policy))
	if err != nil {
		lo.Fatal("error initialising codec", "error", err)
	}

	// Generic serializers get a plain exported mirror of the records so
	// they are not penalised by the codec's internal representation.
	plain := toPlain(records)

	contenders := []struct {
		name string
		run  func() (result, error)
	}{
		{"encoding/json", func() (result, error) { return runJSON(plain) }},
		{"encoding/gob", func() (result, error) { return runGob(plain) }},
		{"logpack", func() (result, error) { return runLogpack(codec, records) }},
		{"logpack/" + policy.String(), func() (result, error) { return runLogpackCompressed(codec, records) }},
	}

	for _, c := range contenders {
		res, err := c.run()
		if err != nil {
			lo.Fatal("contender failed", "codec", c.name, "error", err)
		}
		lo.Info("result",
			"codec", c.name,
			"encode", res.encode.String(),
			"decode", res.decode.String(),
			"size", humanBytes(res.size),
		)
	}

	if out := ko.String("bench.output"); out != "" {
		buf := codec.Encode(records)
		buf, err = codec.Compress(buf)
		if err != nil {
			lo.Fatal("error compressing output", "error", err)
		}
		if err := os.WriteFile(out, buf, 0644); err != nil {
			lo.Fatal("error writing output file", "path", out, "error", err)
		}
		lo.Info("wrote encoded stream", "path", out, "size", humanBytes(len(buf)))
	}

	lo.Info("all contenders round-tripped successfully")
}

// generate builds the record set concurrently. Each worker owns an
// independent seeded generator, so output is reproducible for a given
// seed and worker count.
func generate(count, workers int, seed int64) []logpack.Record {
	if workers < 1 {
		workers = 1
	}

	var (
		records = make([]logpack.Record, count)
		wg      sync.WaitGroup
		chunk   = (count + workers - 1) / workers
	)

	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if lo >= count {
			break
		}
		if hi > count {
			hi = count
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			g := genlog.New(seed + int64(w))
			for i := lo; i < hi; i++ {
				records[i] = g.Record()
			}
		}(w, lo, hi)
	}

	wg.Wait()
	return records
}

func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
