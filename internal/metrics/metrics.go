// Package metrics holds the Prometheus collectors recorded by the storage driver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindSelect = "select"
	KindExec   = "exec"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	StatementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkcat_statements_total",
		Help: "Statements sent to the database, one per round trip.",
	}, []string{"kind", "outcome"})

	StatementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkcat_statement_duration_seconds",
		Help:    "Time from statement dispatch to the last row being scanned.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"kind"})
)
