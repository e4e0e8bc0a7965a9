package main

import (
	"flag"
	"fmt"

	"webtools/internal/config"
	"webtools/internal/logger"
	"webtools/internal/qrcode/generator"
	"webtools/internal/qrcode/scanner"
	"webtools/internal/services/qr"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// clipboardWriteAll подменяется в тестах
var clipboardWriteAll = clipboard.WriteAll

// app - общее состояние команд, заполняется в PersistentPreRunE
type app struct {
	cfg *config.Config
	log *zerolog.Logger
}

func (a *app) qrService() *qr.QRService {
	return qr.NewQRService(generator.New(), scanner.New(), a.cfg.ScanDelay)
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:          "webtools",
		Short:        "Percent-encoding and QR code tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg.ApplyEnv()
			if err := a.cfg.Finalize(); err != nil {
				return fmt.Errorf("config: %w", err)
			}

			log, err := logger.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			a.log = log
			return nil
		},
	}

	// те же флаги, что и у cmd/server
	fs := flag.NewFlagSet("webtools", flag.ContinueOnError)
	a.cfg.RegisterFlags(fs)
	root.PersistentFlags().AddGoFlagSet(fs)

	root.AddCommand(
		newTransformCmd(a, "encode"),
		newTransformCmd(a, "decode"),
		newQRCmd(a),
		newServeCmd(a),
		newTUICmd(a),
	)
	return root
}
