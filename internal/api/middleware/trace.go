package middleware

import (
	"log/slog"
	"net/http"

	"github.com/garagemlabs/veiculos-api/internal/api/shared"
	"github.com/garagemlabs/veiculos-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and a trace-scoped logger for
// downstream handlers and stores. It should be applied early in the chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
