package ping

import (
	"net/http"

	"webtools/internal/http/httputils"
)

func HandlerPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteTextResponse(w, http.StatusOK, "OK")
	}
}
