package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staker/internal/observability/tracing"
)

const TraceIDHeader = "X-Trace-Id"

// traceMiddleware attaches a trace id and a logger carrying it to the request
// context. An incoming X-Trace-Id is reused.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if traceID := r.Header.Get(TraceIDHeader); traceID != "" {
			ctx = tracing.WithTraceID(ctx, traceID)
		} else {
			ctx = tracing.InjectTraceID(ctx)
		}

		w.Header().Set(TraceIDHeader, tracing.TraceIDFromContext(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// metricsMiddleware records the duration and status of each request under the
// matched route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		metrics.RecordHTTPRequest(duration, r.Method, route, status)

		log.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Msg("request served")
	})
}
