package models

import (
	"fmt"
	"strings"
)

type (
	ErrorCorrectionLevel int
	OutputFormat         int
)

const (
	LevelLow ErrorCorrectionLevel = iota
	LevelMedium
	LevelQuartile
	LevelHigh
)

const (
	FormatSVG OutputFormat = iota
	FormatDataURL
	FormatUTF8
)

const (
	MinQRSize = 100
	MaxQRSize = 1000
)

func (l ErrorCorrectionLevel) String() string {
	switch l {
	case LevelLow:
		return "L"
	case LevelQuartile:
		return "Q"
	case LevelHigh:
		return "H"
	default:
		return "M"
	}
}

func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LOW":
		return LevelLow, nil
	case "", "M", "MEDIUM":
		return LevelMedium, nil
	case "Q", "QUARTILE":
		return LevelQuartile, nil
	case "H", "HIGH":
		return LevelHigh, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", ErrInvalidData, s)
}

func (f OutputFormat) String() string {
	switch f {
	case FormatDataURL:
		return "dataurl"
	case FormatUTF8:
		return "utf8"
	default:
		return "svg"
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "svg":
		return FormatSVG, nil
	case "dataurl", "png":
		return FormatDataURL, nil
	case "utf8", "ascii", "text":
		return FormatUTF8, nil
	}
	return 0, fmt.Errorf("%w: unknown output format %q", ErrInvalidData, s)
}

type (
	QROptions struct {
		ErrorCorrectionLevel ErrorCorrectionLevel
		Size                 int
		Color                string
		BackgroundColor      string
		OutputFormat         OutputFormat
	}

	QRRequest struct {
		Text    string
		Options QROptions
	}

	// QRResult - Artifact (svg разметка, data URL или ascii) либо Message
	QRResult struct {
		Artifact string
		Message  string
		failed   bool
	}

	// Download - файл для скачивания, собранный из артефакта
	Download struct {
		Filename string
		MIMEType string
		Data     []byte
	}
)

func DefaultQROptions() QROptions {
	return QROptions{
		ErrorCorrectionLevel: LevelMedium,
		Size:                 300,
		Color:                "#000000",
		BackgroundColor:      "#ffffff",
		OutputFormat:         FormatSVG,
	}
}

// Validate проверяет границы размера, которые задает форма
func (o QROptions) Validate() error {
	if o.Size < MinQRSize || o.Size > MaxQRSize {
		return fmt.Errorf("%w: size must be between %d and %d", ErrInvalidData, MinQRSize, MaxQRSize)
	}
	return nil
}

func QRSuccess(artifact string) QRResult {
	return QRResult{Artifact: artifact}
}

func QRFailure(message string) QRResult {
	return QRResult{Message: message, failed: true}
}

func (r QRResult) OK() bool {
	return !r.failed
}
