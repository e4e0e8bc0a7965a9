package qr

import (
	"context"
	"fmt"
	"time"

	"webtools/internal/domain/models"
)

/*
Encoder и Decoder - внешние зависимости сервиса: генерация QR кода
и распознавание QR кода на изображении
*/

//go:generate mockgen -source=qr.go -destination=../../mocks/mock_qr.go -package=mocks
type Encoder interface {
	Generate(ctx context.Context, text string, opts models.QROptions) (string, error)
}

type Decoder interface {
	Decode(ctx context.Context, img []byte) (string, error)
}

const DefaultScanDelay = 500 * time.Millisecond

// QRService связывает форму QR виджета с внешним генератором и распознавателем
type QRService struct {
	encoder   Encoder
	decoder   Decoder
	scanDelay time.Duration
}

// NewQRService создает новый экземпляр сервиса, scanDelay < 0 заменяется на DefaultScanDelay
func NewQRService(encoder Encoder, decoder Decoder, scanDelay time.Duration) *QRService {
	if scanDelay < 0 {
		scanDelay = DefaultScanDelay
	}
	return &QRService{
		encoder:   encoder,
		decoder:   decoder,
		scanDelay: scanDelay,
	}
}

// Generate проверяет ввод и передает опции генератору без изменений.
// Любая ошибка (и паника) генератора превращается в QRFailure.
func (s *QRService) Generate(ctx context.Context, req models.QRRequest) (res models.QRResult) {
	if req.Text == "" {
		return models.QRFailure(models.ErrEmptyText.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			res = models.QRFailure(fmt.Sprintf("failed to generate QR code: %v", r))
		}
	}()

	artifact, err := s.encoder.Generate(ctx, req.Text, req.Options)
	if err != nil {
		return models.QRFailure(err.Error())
	}
	return models.QRSuccess(artifact)
}
