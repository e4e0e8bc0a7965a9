package generate

import (
	"context"
	"encoding/json"
	"net/http"

	"webtools/internal/domain/models"
	"webtools/internal/http/dto"
	"webtools/internal/http/httputils"
	"webtools/internal/services/qr"
)

//go:generate mockgen -destination=../../../../mocks/mock_qr_generator.go -package=mocks webtools/internal/http/handlers/qr/generate ServiceQRGenerator
type ServiceQRGenerator interface {
	Generate(ctx context.Context, req models.QRRequest) models.QRResult
}

func HandlerGenerate(svc ServiceQRGenerator, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := DecodeRequest(w, r, maxBytes)
		if !ok {
			return
		}

		res := svc.Generate(r.Context(), req)
		if !res.OK() {
			WriteFailure(w, res)
			return
		}

		resp := dto.QRResponseFromDomain(req, res.Artifact, qr.CopyText(req, res.Artifact))
		httputils.WriteJSONResponse(w, http.StatusOK, resp)
	}
}

// DecodeRequest читает JSON тело и переводит его в доменный запрос.
// При ошибке ответ уже записан.
func DecodeRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (models.QRRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	var body dto.QRRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return models.QRRequest{}, false
	}

	req, err := body.ToDomain()
	if err != nil {
		httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return models.QRRequest{}, false
	}
	return req, true
}

// WriteFailure: пустой текст - ошибка клиента, остальное - ошибка генератора
func WriteFailure(w http.ResponseWriter, res models.QRResult) {
	status := http.StatusUnprocessableEntity
	if res.Message == models.ErrEmptyText.Error() {
		status = http.StatusBadRequest
	}
	httputils.WriteJSONError(w, status, res.Message)
}
