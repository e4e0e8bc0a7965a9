package transform

import (
	"encoding/json"
	"net/http"

	"webtools/internal/domain/models"
	"webtools/internal/http/dto"
	"webtools/internal/http/httputils"
)

//go:generate mockgen -destination=../../../../mocks/mock_transformer.go -package=mocks webtools/internal/http/handlers/encode/transform Transformer
type Transformer interface {
	Transform(req models.EncodeRequest) models.EncodeResult
}

func HandlerTransform(svc Transformer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		var req dto.EncodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		model, err := req.ToDomain()
		if err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		res := svc.Transform(model)
		if !res.OK() {
			httputils.WriteJSONError(w, http.StatusUnprocessableEntity, res.Message)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.EncodeResponse{Result: res.Text})
	}
}
