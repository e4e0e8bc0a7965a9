package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"webtools/internal/domain/models"
)

const (
	FilenameSVG  = "qrcode.svg"
	FilenamePNG  = "qrcode.png"
	FilenameText = "qrcode.txt"

	MIMESVG       = "image/svg+xml"
	MIMEPNG       = "image/png"
	MIMETextPlain = "text/plain"
)

// Download собирает файл для скачивания из артефакта генератора
func Download(format models.OutputFormat, artifact string) (models.Download, error) {
	switch format {
	case models.FormatDataURL:
		mime, data, err := ParseDataURL(artifact)
		if err != nil {
			return models.Download{}, err
		}
		return models.Download{Filename: FilenamePNG, MIMEType: mime, Data: data}, nil
	case models.FormatUTF8:
		return models.Download{Filename: FilenameText, MIMEType: MIMETextPlain, Data: []byte(artifact)}, nil
	default:
		return models.Download{Filename: FilenameSVG, MIMEType: MIMESVG, Data: []byte(artifact)}, nil
	}
}

// ParseDataURL разбирает data:<mime>;base64,<payload>. Пустой MIME - image/png.
func ParseDataURL(s string) (string, []byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("%w: not a data URL", models.ErrInvalidData)
	}

	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: data URL without payload", models.ErrInvalidData)
	}

	meta := s[len("data:"):idx] // "<mime>;base64"
	mime, params, _ := strings.Cut(meta, ";")
	if !strings.Contains(";"+params+";", ";base64;") {
		return "", nil, fmt.Errorf("%w: data URL is not base64 encoded", models.ErrInvalidData)
	}
	if mime == "" {
		mime = MIMEPNG
	}

	data, err := base64.StdEncoding.DecodeString(s[idx+1:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid base64 payload: %v", models.ErrInvalidData, err)
	}
	return mime, data, nil
}

// CopyText возвращает то, что уходит в буфер обмена: svg разметку
// для SVG, исходный текст для растра и ascii.
func CopyText(req models.QRRequest, artifact string) string {
	if req.Options.OutputFormat == models.FormatSVG {
		return artifact
	}
	return req.Text
}
