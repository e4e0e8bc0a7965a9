package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webtools/internal/config"
	"webtools/internal/http/server"
	"webtools/internal/logger"
	"webtools/internal/qrcode/generator"
	"webtools/internal/qrcode/scanner"
	"webtools/internal/services/qr"
	"webtools/internal/services/transformer"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	qrService := qr.NewQRService(generator.New(), scanner.New(), cfg.ScanDelay)

	srv, err := server.NewServer(log, *cfg, transformer.NewService(), qrService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}
