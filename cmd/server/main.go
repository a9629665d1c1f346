package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JuhQ/e2e-playwright/internal/config"
	"github.com/JuhQ/e2e-playwright/internal/logger"
	"github.com/JuhQ/e2e-playwright/internal/render"
	"github.com/JuhQ/e2e-playwright/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer l.Sync()

	renderer, err := render.New()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(renderer, l)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.StartServer(ctx, cfg.Addr(), cfg.ShutdownTimeout)
}
