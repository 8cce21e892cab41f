package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluation pipeline metrics
	evaluateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftbench_engine_evaluations_total",
			Help: "Total number of machine evaluations by outcome",
		},
		[]string{"outcome"},
	)
	evaluateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "craftbench_engine_evaluation_duration_seconds",
			Help:    "Duration of machine evaluations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
