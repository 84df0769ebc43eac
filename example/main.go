package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/theflywheel/chash"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	t := chash.New[int]()
	t.Insert("Woffo", 1)
	t.Insert("Gato", 2)

	for k, v := range t.All() {
		level.Info(logger).Log("msg", "entry", "key", k, "value", v)
	}

	// Show where each key landed
	for _, k := range []string{"Woffo", "Gato"} {
		level.Info(logger).Log("msg", "hash", "key", k, "bucket", chash.Hash(k, t.Capacity()))
	}

	for _, k := range []string{"Woffo", "Gato"} {
		v, ok := t.Get(k)
		if !ok {
			level.Error(logger).Log("msg", "key not found", "key", k)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "get", "key", k, "value", v)
	}

	s := t.Stats()
	level.Info(logger).Log("msg", "stats",
		"capacity", s.Capacity,
		"len", s.Len,
		"collisions", s.Collisions,
		"used_buckets", s.UsedBuckets,
		"longest_chain", s.LongestChain,
	)
}
