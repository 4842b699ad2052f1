package intake

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportedOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_imported_orders_total",
			Help: "Total number of shop orders inserted into the record store",
		},
	)

	ImportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_runs_total",
			Help: "Total number of import runs, by result",
		},
		[]string{"result"},
	)
)
