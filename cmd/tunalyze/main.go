// Package main runs the Tunalyze CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/cli"
	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/logger"
	"github.com/tunalyze/tunalyze/internal/spotify"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	cmd := cli.NewTunalyzeCommand(cfg, log)
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Error("Command failed", zap.Error(err))
		fmt.Println(spotify.Friendly(err))
		os.Exit(1)
	}
}
