package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lrucache/internal/cache"
	"lrucache/internal/logger"
	"lrucache/internal/workload"
)

const envLogLevel = "LRUCACHE_LOG_LEVEL"

var (
	capacity = flag.Int("capacity", 3, "Cache capacity for the random workload")
	ops      = flag.Int("ops", 1000, "Number of random operations to run (0 skips the workload)")
	keySpace = flag.Int("keys", 10, "Number of distinct keys the workload draws from")
	seed     = flag.Uint64("seed", 1, "Workload seed")
	logLevel = flag.String("log-level", "", "Log level: trace, debug, info, warning, error, off (default info, or $"+envLogLevel+")")
)

func setupLogging() {
	name := *logLevel
	if name == "" {
		name = os.Getenv(envLogLevel)
	}
	level, err := logger.ParseLevel(name)
	logger.SetLogLevel(level)
	if err != nil {
		logger.Err(err).Str("fallback", level.String()).Msg("falling back to default log level")
	}
	logger.Debug().Str("level", level.String()).Msg("log level set")
}

func main() {
	flag.Parse()
	setupLogging()

	// SIGINT/SIGTERM stops the random workload between operations.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("lrucache demo starting")

	replayScenario()

	if *ops > 0 {
		if err := runWorkload(ctx); err != nil {
			logger.Fatal().Err(err).Int("capacity", *capacity).Msg("workload failed")
		}
	}

	fmt.Println("Done.")
}

// replayScenario walks the capacity-3 example step by step.
func replayScenario() {
	log := logger.Component("scenario")
	c := cache.MustNew(cache.Config[int, string]{Capacity: 3, Logger: &log})

	step := func(what string) {
		log.Info().Int("size", c.Len()).Str("order", c.String()).Msg(what)
	}

	c.Put(1, "one")
	step("put 1")
	c.Put(2, "two")
	step("put 2")
	c.Put(3, "three")
	step("put 3")

	if v, ok := c.Get(1); ok {
		step("get 1 = " + v)
	}

	c.Put(4, "four")
	step("put 4 (evicts 2)")

	if _, err := c.Lookup(2); err != nil {
		log.Info().Err(err).Msg("get 2")
	}

	if v, ok := c.Get(3); ok {
		step("get 3 = " + v)
	}

	c.Put(5, "five")
	step("put 5 (evicts 1)")
}

func runWorkload(ctx context.Context) error {
	g := workload.New(*seed, *keySpace, workload.DefaultMix)
	log := logger.Component("workload").With().Str("run", g.ID()).Logger()

	c, err := cache.New(cache.Config[string, string]{
		Capacity: *capacity,
		Logger:   &log,
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("capacity", c.Cap()).
		Int("ops", *ops).
		Int("keys", *keySpace).
		Uint64("seed", *seed).
		Msg("running random workload")

	var stats workload.Stats
	for i := 0; i < *ops; i++ {
		select {
		case <-ctx.Done():
			log.Warn().Int("completed", i).Msg("received shutdown signal")
			log.Info().Object("stats", stats).Msg("workload interrupted")
			return nil
		default:
		}

		op := g.Next()
		var ok bool
		switch op.Kind {
		case workload.Get:
			_, ok = c.Get(op.Key)
		case workload.Put:
			ok = c.Put(op.Key, op.Value)
		case workload.Delete:
			ok = c.Delete(op.Key)
		}
		stats.Record(op, ok)
		log.Trace().Stringer("op", op.Kind).Str("key", op.Key).Bool("ok", ok).Msg("applied")
	}

	log.Info().
		Object("stats", stats).
		Int("size", c.Len()).
		Str("order", c.String()).
		Msg("workload finished")
	return nil
}
