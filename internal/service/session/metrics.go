package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SessionBootstrapTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "session_bootstrap_total",
		Help: "Total number of session bootstraps by final state",
	},
	[]string{"state"},
)

var ProfileLoadAttemptsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "session_profile_load_attempts_total",
		Help: "Total number of profile load attempts including retries",
	},
)
