package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
)

// MetricsMiddleware registra contadores e latência de cada requisição no
// Prometheus. Deve vir depois do LoggingMiddleware na cadeia para medir
// apenas o tempo do handler.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metrics.DefaultMetrics == nil {
				next.ServeHTTP(w, r)
				return
			}

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.DefaultMetrics.ObserveHTTP(r.Method, r.URL.Path, lrw.statusCode, time.Since(startTime))
		})
	}
}
