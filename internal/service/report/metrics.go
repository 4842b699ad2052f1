package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "report_cache_requests_total",
		Help: "Total number of report summary cache lookups",
	},
	[]string{"result"},
)

var ReportBuildDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "report_build_duration_seconds",
		Help:    "Duration of building reports from the record store",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"report"},
)
