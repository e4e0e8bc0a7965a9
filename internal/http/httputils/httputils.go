package httputils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"webtools/internal/http/dto"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType        = "Content-Type"
	HeaderContentEncoding    = "Content-Encoding"
	HeaderAcceptEncoding     = "Accept-Encoding"
	HeaderContentLength      = "Content-Length"
	HeaderContentDisposition = "Content-Disposition"
	HeaderVary               = "Vary"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEImageSVG        = "image/svg+xml"

	EncodingGzip = "gzip"
)

func WriteTextError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteTextResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteBadRequestError(w http.ResponseWriter, details string) {
	WriteTextError(w, http.StatusBadRequest, fmt.Sprintf("Bad Request\n%s", details))
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
}

// WriteJSONResponse не экранирует HTML: в ответах бывает svg разметка
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(data)
}

// WriteAttachment отдает файл на скачивание
func WriteAttachment(w http.ResponseWriter, filename, mimeType string, data []byte) {
	w.Header().Set(HeaderContentType, mimeType)
	w.Header().Set(HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set(HeaderContentLength, strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
