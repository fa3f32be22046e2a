package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"slcsp/internal/application"
	"slcsp/internal/config"
	"slcsp/pkg/contextx"
	"slcsp/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1) //nolint:gocritic // nothing to clean up yet
	}

	// stdout carries the result, logs go to stderr
	log := logx.New(os.Stderr, logx.ParseLevel(cfg.Log.Level), cfg.Log.Color).
		With(slog.String(logx.FieldAppName, "slcsp"))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg, os.Stdout); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1)
	}
}
