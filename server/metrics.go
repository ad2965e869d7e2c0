package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relgraph_analyses_total",
		Help: "Analyze requests by result",
	}, []string{"result"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "relgraph_analysis_duration_seconds",
		Help:    "Pipeline duration per scene",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	objectsAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relgraph_objects_analyzed_total",
		Help: "Objects classified across all scenes",
	})

	sceneCoverage = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "relgraph_scene_coverage_ratio",
		Help:    "Share of objects with at least one unique pattern",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})
)
