package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"webtools/internal/http/dto"
	"webtools/internal/http/httputils"
	"webtools/internal/services/qr"

	"github.com/rs/zerolog"
)

const formFile = "file"

//go:generate mockgen -destination=../../../../mocks/mock_qr_scanner.go -package=mocks webtools/internal/http/handlers/qr/scan ServiceQRScanner
type ServiceQRScanner interface {
	Scan(ctx context.Context, r io.Reader) (string, error)
}

// HandlerScan принимает multipart форму с полем file и распознает QR код
func HandlerScan(svc ServiceQRScanner, log *zerolog.Logger, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile(formFile)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				httputils.WriteJSONError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("image is larger than %d bytes", maxErr.Limit))
				return
			}
			httputils.WriteJSONError(w, http.StatusBadRequest, "multipart field \"file\" is required")
			return
		}
		defer file.Close()

		text, err := svc.Scan(r.Context(), file)
		if err != nil {
			log.Warn().Err(err).Str("filename", header.Filename).Msg("scan failed")
			httputils.WriteJSONError(w, http.StatusUnprocessableEntity, qr.ScanErrorMessage(err))
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.ScanResponse{Result: text})
	}
}
