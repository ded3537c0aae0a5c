package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sashko-guz/minio-file/internal/cli"
	"github.com/sashko-guz/minio-file/internal/config"
	"github.com/sashko-guz/minio-file/internal/logger"
)

func main() {
	// Load .env file if it exists (optional); variables already set win
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg, os.LookupEnv).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
