package dto

import (
	"webtools/internal/domain/models"
)

// Request
type (
	EncodeRequest struct {
		Text      string `json:"text"`
		Mode      string `json:"mode"`
		Algorithm string `json:"algorithm"`
	}

	QROptions struct {
		ErrorCorrectionLevel string `json:"error_correction_level,omitempty"`
		Size                 int    `json:"size,omitempty"`
		Color                string `json:"color,omitempty"`
		BackgroundColor      string `json:"background_color,omitempty"`
		OutputFormat         string `json:"output_format,omitempty"`
	}

	QRRequest struct {
		Text    string    `json:"text"`
		Options QROptions `json:"options"`
	}
)

// Response
type (
	EncodeResponse struct {
		Result string `json:"result"`
	}

	QRResponse struct {
		Artifact string `json:"artifact"`
		Format   string `json:"format"`
		CopyText string `json:"copy_text"`
	}

	ScanResponse struct {
		Result string `json:"result"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

// Request → Domain
func (r EncodeRequest) ToDomain() (models.EncodeRequest, error) {
	mode, err := models.ParseMode(r.Mode)
	if err != nil {
		return models.EncodeRequest{}, err
	}
	alg, err := models.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return models.EncodeRequest{}, err
	}
	return models.EncodeRequest{Text: r.Text, Mode: mode, Algorithm: alg}, nil
}

// ToDomain заполняет пропущенные опции значениями по умолчанию и проверяет размер
func (r QRRequest) ToDomain() (models.QRRequest, error) {
	opts := models.DefaultQROptions()

	level, err := models.ParseErrorCorrectionLevel(r.Options.ErrorCorrectionLevel)
	if err != nil {
		return models.QRRequest{}, err
	}
	opts.ErrorCorrectionLevel = level

	format, err := models.ParseOutputFormat(r.Options.OutputFormat)
	if err != nil {
		return models.QRRequest{}, err
	}
	opts.OutputFormat = format

	if r.Options.Size != 0 {
		opts.Size = r.Options.Size
	}
	if r.Options.Color != "" {
		opts.Color = r.Options.Color
	}
	if r.Options.BackgroundColor != "" {
		opts.BackgroundColor = r.Options.BackgroundColor
	}

	if err := opts.Validate(); err != nil {
		return models.QRRequest{}, err
	}
	return models.QRRequest{Text: r.Text, Options: opts}, nil
}

// Domain → Response
func QRResponseFromDomain(req models.QRRequest, artifact, copyText string) QRResponse {
	return QRResponse{
		Artifact: artifact,
		Format:   req.Options.OutputFormat.String(),
		CopyText: copyText,
	}
}
