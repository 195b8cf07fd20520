// Package metrics defines Prometheus metrics for observer analysis.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for OracleLookups.
const (
	LookupTree     = "tree"      // answered from an unconditional BFS tree
	LookupHoleHit  = "hole_hit"  // answered from a cached hole-excluded search
	LookupHoleMiss = "hole_miss" // required a fresh hole-excluded search
)

// Label values for CacheInvalidations.
const (
	ReasonMutation = "mutation"
	ReasonExplicit = "explicit"
)

var (
	OracleLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_oracle_lookups_total",
			Help: "Hole-excluded distance lookups by cache outcome",
		},
		[]string{"orientation", "cache"},
	)

	ObserverSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_observer_searches_total",
			Help: "(m,k)-observer decisions by outcome",
		},
		[]string{"orientation", "result"},
	)

	ObserverBranches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crowd_observer_branches_total",
			Help: "Branch-and-bound nodes expanded by the observer search",
		},
	)

	CacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_cache_invalidations_total",
			Help: "Wholesale cache clears by reason",
		},
		[]string{"reason"},
	)

	CensusNodes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crowd_census_nodes_total",
			Help: "Nodes scored by census runs",
		},
	)

	CensusDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crowd_census_duration_seconds",
			Help:    "Census run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		OracleLookups, ObserverSearches, ObserverBranches,
		CacheInvalidations, CensusNodes, CensusDuration,
	)
}
