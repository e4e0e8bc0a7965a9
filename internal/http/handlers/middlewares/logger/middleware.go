package logger

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}

			// Логируем начало запроса только в debug режиме
			if log.GetLevel() <= zerolog.DebugLevel {
				log.Debug().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("ip", r.RemoteAddr).
					Msg("request started")
			}

			// Перехватываем паники, чтобы залогировать их
			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Str("panic", fmt.Sprintf("%v", err)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					if recorder.statusCode == 0 {
						http.Error(recorder, "Internal Server Error", http.StatusInternalServerError)
					}
				}

				duration := time.Since(start)

				// Определяем тип сообщения по статусу
				var msg string
				switch {
				case recorder.statusCode >= 500:
					msg = "server error"
				case recorder.statusCode >= 400:
					msg = "client error"
				default:
					msg = "request completed"
				}

				logEntry := log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", recorder.statusCode).
					Dur("duration_ms", duration/time.Millisecond).
					Int("bytes", recorder.size).
					Str("ip", r.RemoteAddr)

				// Помечаем медленные запросы
				if duration > time.Second {
					logEntry = logEntry.Str("slow", "true")
				}

				if recorder.statusCode >= 400 && recorder.statusCode < 500 {
					logEntry = logEntry.Str("error_type", "client_error")
				}
				if recorder.statusCode >= 500 {
					logEntry = logEntry.Str("error_type", "server_error")
				}

				logEntry.Msg(msg)
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}
