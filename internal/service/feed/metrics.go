package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FeedSubscriptions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "feed_subscriptions",
		Help: "Number of active change feed subscriptions",
	},
)

var FeedDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feed_dispatch_total",
		Help: "Total number of refetch commands dispatched to subscriptions",
	},
	[]string{"result"},
)
