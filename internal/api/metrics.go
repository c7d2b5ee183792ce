package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "youversion_client",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by resource and response code.",
		},
		[]string{"resource", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "youversion_client",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request latency by resource.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)
