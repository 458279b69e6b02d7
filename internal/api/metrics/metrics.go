// Package metrics defines and registers all custom Prometheus metrics for the
// donation gateway. It is the single source of truth for metric names,
// labels, and help strings. Registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "donation"

// DenialsTotal counts terminal request denials.
// Label:
//   - kind: "username_not_found", "incorrect_password", or "policy"
var DenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "denials_total",
		Help:      "Total number of requests denied by authentication or policy.",
	},
	[]string{"kind"},
)

// StoreFailuresTotal counts failed store round-trips.
// Label:
//   - op: the store operation that failed (e.g. "resolve account", "list funds")
var StoreFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_failures_total",
		Help:      "Total number of store round-trips that failed.",
	},
	[]string{"op"},
)

// PledgesRecordedTotal counts successfully recorded donations.
var PledgesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pledges_recorded_total",
		Help:      "Total number of pledges recorded.",
	},
)

// WithdrawalsRecordedTotal counts successfully recorded non-profit draws.
var WithdrawalsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "withdrawals_recorded_total",
		Help:      "Total number of withdrawals recorded.",
	},
)
