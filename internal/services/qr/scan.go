package qr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"webtools/internal/domain/models"
)

// Scan читает изображение, выжидает scanDelay и распознает QR код.
// Отмена ctx во время ожидания прерывает скан без вызова декодера.
func (s *QRService) Scan(ctx context.Context, r io.Reader) (string, error) {
	img, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrReadFile, err)
	}

	if s.scanDelay > 0 {
		timer := time.NewTimer(s.scanDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	text, err := s.decoder.Decode(ctx, img)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}
	return text, nil
}

// ScanErrorMessage переводит ошибку скана в сообщение для пользователя
func ScanErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrReadFile):
		return models.ErrReadFile.Error()
	case errors.Is(err, models.ErrNoQRCode):
		return models.ErrNoQRCode.Error()
	case errors.Is(err, models.ErrInvalidData):
		return "Unsupported image format."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Scan cancelled."
	default:
		return "Failed to decode image."
	}
}
