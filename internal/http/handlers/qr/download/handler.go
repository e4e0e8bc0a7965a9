package download

import (
	"context"
	"net/http"

	"webtools/internal/domain/models"
	"webtools/internal/http/handlers/qr/generate"
	"webtools/internal/http/httputils"
	"webtools/internal/services/qr"

	"github.com/rs/zerolog"
)

type ServiceQRGenerator interface {
	Generate(ctx context.Context, req models.QRRequest) models.QRResult
}

// HandlerDownload генерирует QR код и отдает его файлом (qrcode.svg/png/txt)
func HandlerDownload(svc ServiceQRGenerator, log *zerolog.Logger, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := generate.DecodeRequest(w, r, maxBytes)
		if !ok {
			return
		}

		res := svc.Generate(r.Context(), req)
		if !res.OK() {
			generate.WriteFailure(w, res)
			return
		}

		file, err := qr.Download(req.Options.OutputFormat, res.Artifact)
		if err != nil {
			log.Error().Err(err).Str("format", req.Options.OutputFormat.String()).Msg("failed to build download")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to build download")
			return
		}

		httputils.WriteAttachment(w, file.Filename, file.MIMEType, file.Data)
	}
}
