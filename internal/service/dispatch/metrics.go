package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DispatchItemsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dispatch_items_total",
		Help: "Total number of orders processed by batch operations, by outcome",
	},
	[]string{"operation", "status"},
)
