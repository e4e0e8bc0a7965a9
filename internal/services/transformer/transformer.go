package transformer

import (
	"fmt"

	"webtools/internal/codec/percent"
	"webtools/internal/domain/models"
)

// Transform применяет выбранный алгоритм кодирования к тексту.
// Кодирование тотально, ошибку может вернуть только декодирование.
func Transform(req models.EncodeRequest) models.EncodeResult {
	if req.Mode == models.ModeEncode {
		return models.EncodeSuccess(encode(req.Text, req.Algorithm))
	}

	decoded, err := decode(req.Text, req.Algorithm)
	if err != nil {
		return models.EncodeFailure(fmt.Sprintf("Error decoding text: %v", err))
	}
	return models.EncodeSuccess(decoded)
}

func encode(text string, alg models.Algorithm) string {
	if alg == models.AlgorithmLegacy {
		return percent.Escape(text)
	}
	return percent.EncodeComponent(text)
}

func decode(text string, alg models.Algorithm) (string, error) {
	if alg == models.AlgorithmLegacy {
		return percent.Unescape(text)
	}
	return percent.DecodeComponent(text)
}

// Service - обертка над Transform для слоев, которые ждут интерфейс
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Transform(req models.EncodeRequest) models.EncodeResult {
	return Transform(req)
}
