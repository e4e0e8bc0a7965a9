// Package scanner - реализация qr.Decoder поверх github.com/makiuchi-d/gozxing.
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"webtools/internal/domain/models"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

type Scanner struct {
	hints map[gozxing.DecodeHintType]interface{}
}

func New() *Scanner {
	return &Scanner{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode распознает QR код на изображении (png, jpeg, gif)
func (s *Scanner) Decode(ctx context.Context, img []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("%w: cannot decode image: %v", models.ErrInvalidData, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidData, err)
	}

	result, err := zxingqr.NewQRCodeReader().Decode(bmp, s.hints)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrNoQRCode, err)
	}
	return result.GetText(), nil
}
