package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tennis_provider_requests_total",
		Help: "Provider calls by method and outcome",
	}, []string{"method", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tennis_provider_request_duration_seconds",
		Help:    "Duration of provider HTTP calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tennis_provider_cache_lookups_total",
		Help: "Raw payload cache lookups by method and result",
	}, []string{"method", "result"})
)
