package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes recorded in runsTotal.
const (
	outcomeFound            = "found"
	outcomeNoPath           = "no_path"
	outcomeStopped          = "stopped"
	outcomeMissingEndpoints = "missing_endpoints"
)

var (
	// stepsTotal counts effective Step calls.
	// Labels: algorithm
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pathviz",
		Subsystem: "search",
		Name:      "steps_total",
		Help:      "Total search steps executed",
	}, []string{"algorithm"})

	// runsTotal counts finished runs.
	// Labels: algorithm, outcome (found, no_path, stopped, missing_endpoints)
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pathviz",
		Subsystem: "search",
		Name:      "runs_total",
		Help:      "Total search runs by outcome",
	}, []string{"algorithm", "outcome"})

	// runDuration measures wall time from Begin to completion or Stop.
	// Labels: algorithm
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pathviz",
		Subsystem: "search",
		Name:      "run_duration_seconds",
		Help:      "Search run duration in seconds",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
	}, []string{"algorithm"})

	// visitedCells tracks the visited-set size at the end of each run.
	// Labels: algorithm
	visitedCells = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pathviz",
		Subsystem: "search",
		Name:      "visited_cells",
		Help:      "Cells visited per completed run",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"algorithm"})
)

// recordRun publishes the terminal metrics of one run.
func recordRun(algo Algorithm, outcome string, r Results) {
	label := algo.String()
	runsTotal.WithLabelValues(label, outcome).Inc()
	runDuration.WithLabelValues(label).Observe(r.Elapsed.Seconds())
	visitedCells.WithLabelValues(label).Observe(float64(r.VisitedCount))
}
