package main

import (
	"NetSyncDiff/internal/config"
	"NetSyncDiff/internal/pipeline"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Build the pipeline
	p, err := pipeline.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}

	// 3. Run it; the plot viewer blocks until dismissed or interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		stop()
		log.Fatalf("Trace comparison failed: %v", err)
	}
}
