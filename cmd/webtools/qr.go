package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webtools/internal/domain/models"
	"webtools/internal/services/qr"

	"github.com/spf13/cobra"
)

func newQRCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Generate and scan QR codes",
	}
	cmd.AddCommand(newQRGenerateCmd(a), newQRScanCmd(a))
	return cmd
}

type generateFlags struct {
	format     string
	level      string
	size       int
	color      string
	background string
	output     string
	copy       bool
}

func newQRGenerateCmd(a *app) *cobra.Command {
	defaults := models.DefaultQROptions()
	f := generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Generate a QR code and save it as qrcode.svg, qrcode.png or qrcode.txt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}

			req := models.QRRequest{Text: strings.Join(args, " "), Options: opts}
			res := a.qrService().Generate(cmd.Context(), req)
			if !res.OK() {
				return errors.New(res.Message)
			}

			out := cmd.OutOrStdout()
			if f.output == "-" {
				if _, err := fmt.Fprintln(out, res.Artifact); err != nil {
					return err
				}
			} else {
				file, err := qr.Download(opts.OutputFormat, res.Artifact)
				if err != nil {
					return fmt.Errorf("failed to build download: %w", err)
				}

				path := filepath.Join(f.output, file.Filename)
				if err := os.WriteFile(path, file.Data, 0o644); err != nil {
					return fmt.Errorf("failed to save %s: %w", path, err)
				}

				a.log.Info().
					Str("path", path).
					Str("mime_type", file.MIMEType).
					Int("bytes", len(file.Data)).
					Msg("QR code saved")
				if _, err := fmt.Fprintln(out, path); err != nil {
					return err
				}
			}

			if f.copy {
				if err := clipboardWriteAll(qr.CopyText(req, res.Artifact)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", defaults.OutputFormat.String(), "Output format: svg, dataurl or utf8")
	fl.StringVar(&f.level, "level", defaults.ErrorCorrectionLevel.String(), "Error correction level: L, M, Q or H")
	fl.IntVar(&f.size, "size", defaults.Size, "Image size in pixels (100..1000)")
	fl.StringVar(&f.color, "color", defaults.Color, "Module color")
	fl.StringVar(&f.background, "background", defaults.BackgroundColor, "Background color")
	fl.StringVarP(&f.output, "output", "o", ".", `Directory for the file, "-" prints the artifact to stdout`)
	fl.BoolVar(&f.copy, "copy", false, "Copy the result to the clipboard")
	return cmd
}

func (f generateFlags) options() (models.QROptions, error) {
	format, err := models.ParseOutputFormat(f.format)
	if err != nil {
		return models.QROptions{}, err
	}
	level, err := models.ParseErrorCorrectionLevel(f.level)
	if err != nil {
		return models.QROptions{}, err
	}

	opts := models.QROptions{
		ErrorCorrectionLevel: level,
		Size:                 f.size,
		Color:                f.color,
		BackgroundColor:      f.background,
		OutputFormat:         format,
	}
	if err := opts.Validate(); err != nil {
		return models.QROptions{}, err
	}
	return opts, nil
}

func newQRScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE",
		Short: "Decode a QR code from a PNG, JPEG or GIF image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				a.log.Debug().Err(err).Str("path", args[0]).Msg("failed to open image")
				return models.ErrReadFile
			}
			defer file.Close()

			text, err := a.qrService().Scan(cmd.Context(), file)
			if err != nil {
				a.log.Debug().Err(err).Str("path", args[0]).Msg("scan failed")
				return errors.New(qr.ScanErrorMessage(err))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}
