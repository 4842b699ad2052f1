package objectstorage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ObjectStorageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "object_storage_requests_total",
			Help: "Total number of object storage calls, by operation and result",
		},
		[]string{"operation", "result"},
	)

	ObjectStorageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "object_storage_request_duration_seconds",
			Help:    "Duration of object storage calls including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)
