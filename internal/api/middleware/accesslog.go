package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос вместе с request_id
// Должен стоять после RequestID; ответы 5xx пишутся как предупреждения
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			format := "%s %s - %d in %s request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, recorder.status, time.Since(start), GetRequestID(r.Context())}
			if recorder.status >= http.StatusInternalServerError {
				log.Warn(format, args...)
				return
			}
			log.Info(format, args...)
		})
	}
}
