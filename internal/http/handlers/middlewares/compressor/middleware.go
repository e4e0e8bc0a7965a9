package compressor

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"

	"webtools/internal/http/httputils"
)

// MiddlewareCompressing возвращает middleware для gzip сжатия/распаковки
func MiddlewareCompressing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Обработка входящего сжатого контента
			if err := decompressRequest(r); err != nil {
				httputils.WriteTextError(w, http.StatusBadRequest, "invalid gzip data")
				return
			}
			if rc, ok := r.Body.(*gzipReadCloser); ok {
				defer rc.Close()
			}

			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.close()

			w.Header().Add(httputils.HeaderVary, httputils.HeaderAcceptEncoding)
			next.ServeHTTP(gw, r)
		})
	}
}

// decompressRequest распаковывает входящий gzip-контент
func decompressRequest(r *http.Request) error {
	if !strings.Contains(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
		return nil
	}

	gz, err := gzip.NewReader(r.Body)
	if err != nil {
		return err
	}
	r.Body = &gzipReadCloser{gz: gz, body: r.Body}
	r.Header.Del(httputils.HeaderContentEncoding)
	r.ContentLength = -1
	return nil
}

// gzipReadCloser закрывает и gzip.Reader, и исходное тело запроса
type gzipReadCloser struct {
	gz   *gzip.Reader
	body io.ReadCloser
}

func (rc *gzipReadCloser) Read(p []byte) (int, error) {
	return rc.gz.Read(p)
}

func (rc *gzipReadCloser) Close() error {
	return errors.Join(rc.gz.Close(), rc.body.Close())
}

// acceptsGzip проверяет поддержку gzip клиентом
func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get(httputils.HeaderAcceptEncoding), httputils.EncodingGzip)
}

// isCompressible - PNG и так сжат, текстовые ответы сжимаем
func isCompressible(contentType string) bool {
	return strings.HasPrefix(contentType, httputils.MIMEApplicationJSON) ||
		strings.HasPrefix(contentType, httputils.MIMETextHTML) ||
		strings.HasPrefix(contentType, httputils.MIMETextPlain) ||
		strings.HasPrefix(contentType, httputils.MIMEImageSVG)
}

// gzipResponseWriter решает, сжимать ли ответ, по Content-Type в момент
// записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gz      *gzip.Writer
	decided bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.decide()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.decide()
	if w.gz != nil {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipResponseWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true

	if !isCompressible(w.Header().Get(httputils.HeaderContentType)) {
		return
	}
	w.Header().Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w.Header().Del(httputils.HeaderContentLength)
	w.gz = gzip.NewWriter(w.ResponseWriter)
}

func (w *gzipResponseWriter) close() {
	if w.gz != nil {
		w.gz.Close()
	}
}
