package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"urlfetcher/echoservice/internal/app"
	"urlfetcher/echoservice/internal/config"
	"urlfetcher/echoservice/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New("echoservice", cfg.Verbosity, os.Stderr)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Errorf("echo server exited with error: %v", err)
		stop()
		os.Exit(1)
	}
}
