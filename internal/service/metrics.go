package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cyclesTotal counts completed illumination cycles by overall
	// guardrail verdict. Labels: verdict (pass, degraded, fail)
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "illuminate",
		Subsystem: "engine",
		Name:      "cycles_total",
		Help:      "Total illumination cycles by overall guardrail verdict",
	}, []string{"verdict"})

	// cycleAcuity tracks the distribution of overall cycle acuity.
	cycleAcuity = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "illuminate",
		Subsystem: "engine",
		Name:      "cycle_acuity",
		Help:      "Distribution of overall cycle acuity scores",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	})

	// cycleDuration measures end-to-end cycle latency.
	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "illuminate",
		Subsystem: "engine",
		Name:      "cycle_duration_seconds",
		Help:      "End-to-end illumination cycle latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	})

	// cycleRejections counts requests rejected before a cycle started.
	// Labels: reason (validation, config, decode)
	cycleRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "illuminate",
		Subsystem: "engine",
		Name:      "cycle_rejections_total",
		Help:      "Requests rejected before the cycle started",
	}, []string{"reason"})
)
