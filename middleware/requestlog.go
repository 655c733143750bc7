package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request identifier
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the identifier the request logger attached to ctx
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLogger provides HTTP middleware that tags each request with an ID
// and writes one access log line when it completes
type RequestLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewRequestLogger creates a request logger. A nil logger discards output.
func NewRequestLogger(logger *zap.Logger) *RequestLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestLogger{
		logger: logger.Named("http"),
		now:    time.Now,
	}
}

// statusRecorder remembers the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// Middleware wraps an http.Handler with request logging.
// A client-supplied X-Request-ID is reused when it parses as a UUID.
func (rl *RequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := rl.now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", rl.now().Sub(start)),
		}
		switch {
		case rec.status >= 500:
			rl.logger.Error("request", fields...)
		case rec.status >= 400:
			rl.logger.Warn("request", fields...)
		default:
			rl.logger.Debug("request", fields...)
		}
	})
}
