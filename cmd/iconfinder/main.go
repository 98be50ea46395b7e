package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/iconfinder/internal/app"
	"github.com/Adda-Baaj/iconfinder/internal/cli"
	"github.com/Adda-Baaj/iconfinder/internal/config"
	"github.com/Adda-Baaj/iconfinder/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "iconfinder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.DebugObj("iconfinder starting", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(func() (*app.App, error) {
		return app.New(cfg, log)
	})
	return root.ExecuteContext(ctx)
}
