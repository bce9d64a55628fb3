package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"mug-store/internal/config"
	"mug-store/internal/lib/logger"
	"mug-store/internal/seed"
	"mug-store/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanups always happen.
func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	count := flags.Int("count", cfg.Seed.Count, "number of mugs to insert")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log, zapLog := logger.New(cfg.Server.Env)
	defer func() { _ = zapLog.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	seed64 := uint64(time.Now().UnixNano())
	if _, err := seed.Run(ctx, log, store, *count, rand.New(rand.NewPCG(seed64, seed64>>1))); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	return nil
}
