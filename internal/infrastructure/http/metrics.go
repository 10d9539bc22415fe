package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exchange_service",
			Name:      "http_req_total",
			Help:      "total quantity of http requests",
		}, []string{"code", "method", "path"})
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exchange_service",
			Name:      "http_req_duration",
			Help:      "http requests duration",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 20},
		}, []string{"code", "method", "path"})
)

func metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			sr := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(sr, r)

			pattern := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				pattern = rc.RoutePattern()
			}
			code := strconv.Itoa(sr.code())
			httpDuration.WithLabelValues(code, r.Method, pattern).Observe(time.Since(started).Seconds())
			httpRequests.WithLabelValues(code, r.Method, pattern).Inc()
		})
	}
}
