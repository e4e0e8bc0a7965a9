package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"webtools/internal/domain/models"
	"webtools/internal/services/transformer"

	"github.com/spf13/cobra"
)

func newTransformCmd(a *app, mode string) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   mode + " [TEXT...]",
		Short: strings.ToUpper(mode[:1]) + mode[1:] + " percent-encoded text (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}
			req := models.EncodeRequest{Text: text, Mode: m, Algorithm: models.AlgorithmModern}
			if legacy {
				req.Algorithm = models.AlgorithmLegacy
			}

			res := transformer.Transform(req)
			if !res.OK() {
				return errors.New(res.Message)
			}

			a.log.Debug().
				Str("mode", req.Mode.String()).
				Str("algorithm", req.Algorithm.String()).
				Int("input_len", len(text)).
				Msg("text transformed")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "Use the legacy escape/unescape table")
	return cmd
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
