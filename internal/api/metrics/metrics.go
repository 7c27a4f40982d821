// Package metrics defines and registers all custom Prometheus metrics for the
// EA catalog API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Catalog writes ────────────────────────────────────────────────────────────

// RecordsWrittenTotal counts committed catalog writes.
// Labels:
//   - kind: the record kind (e.g. "supplier", "tech_debt")
//   - action: "created", "updated" or "deleted"
var RecordsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_written_total",
		Help:      "Total number of committed catalog writes, by kind and action.",
	},
	[]string{"kind", "action"},
)

// ActivityErrorsTotal counts activity entries that could not be stored.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity log writes that failed.",
	},
)

// ── Authentication ────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Idempotency ───────────────────────────────────────────────────────────────

// IdempotentReplaysTotal counts POST requests answered from the idempotency store.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of requests answered with a stored response for a repeated Idempotency-Key.",
	},
)
