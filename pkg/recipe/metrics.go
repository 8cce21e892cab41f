package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recipe store cache metrics
	storeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "craftbench_recipe_store_cache_hits_total",
			Help: "Total number of recipe store cache hits",
		},
	)
	storeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "craftbench_recipe_store_cache_misses_total",
			Help: "Total number of recipe store cache misses (initial loads)",
		},
	)
)
