// Package generator - реализация qr.Encoder поверх github.com/skip2/go-qrcode.
package generator

import (
	"context"
	"encoding/base64"
	"fmt"

	"webtools/internal/domain/models"

	qrcode "github.com/skip2/go-qrcode"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate строит QR код и отдает его в формате opts.OutputFormat:
// svg разметка, data URL c PNG или ascii арт из полублоков
func (g *Generator) Generate(ctx context.Context, text string, opts models.QROptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fg, err := ParseColor(opts.Color)
	if err != nil {
		return "", fmt.Errorf("invalid color: %w", err)
	}
	bg, err := ParseColor(opts.BackgroundColor)
	if err != nil {
		return "", fmt.Errorf("invalid background color: %w", err)
	}

	q, err := qrcode.New(text, recoveryLevel(opts.ErrorCorrectionLevel))
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg

	switch opts.OutputFormat {
	case models.FormatDataURL:
		png, err := q.PNG(opts.Size)
		if err != nil {
			return "", fmt.Errorf("failed to render PNG: %w", err)
		}
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
	case models.FormatUTF8:
		return q.ToSmallString(false), nil
	default:
		return renderSVG(q.Bitmap(), opts.Size, fg, bg), nil
	}
}

// Q в go-qrcode нет, поэтому уровни сдвинуты: Q -> High (25%), H -> Highest (30%)
func recoveryLevel(l models.ErrorCorrectionLevel) qrcode.RecoveryLevel {
	switch l {
	case models.LevelLow:
		return qrcode.Low
	case models.LevelQuartile:
		return qrcode.High
	case models.LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
