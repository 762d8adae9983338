package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-Id"

type ctxKey int

const ctxKeyRequestID ctxKey = iota

type Logger interface {
	Info(format string, v ...interface{})
}

// GetRequestID получает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// RequestID берёт X-Request-Id из запроса или генерирует новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, id)))
	})
}

// AccessLog пишет одну строку на запрос
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			logger.Info("HTTP %s %s - status=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start), GetRequestID(r.Context()))
		})
	}
}
