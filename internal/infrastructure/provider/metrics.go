package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exchange_service",
			Name:      "provider_requests_total",
			Help:      "rate provider calls by outcome",
		}, []string{"provider", "outcome"})
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exchange_service",
			Name:      "provider_duration_seconds",
			Help:      "rate provider response duration",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"})
	exhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "exchange_service",
			Name:      "provider_exhausted_total",
			Help:      "requests where every rate provider failed",
		})
)
