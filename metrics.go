package youversion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	versionCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "youversion_client",
			Name:      "version_cache_hits_total",
			Help:      "Bible version lookups served from the in-memory cache.",
		},
	)

	versionCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "youversion_client",
			Name:      "version_cache_misses_total",
			Help:      "Bible version lookups that triggered a fetch of the versions resource.",
		},
	)

	imageDownloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "youversion_client",
			Name:      "image_downloads_total",
			Help:      "Verse images downloaded to disk.",
		},
	)
)
