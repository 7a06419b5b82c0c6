// Package metrics provides Prometheus metrics for the fern service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationsTotal tracks document generations by type, mode, and the
	// strategy that ultimately produced output (official, summary, text)
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "generation",
			Name:      "documents_total",
			Help:      "Total number of document generations by outcome",
		},
		[]string{"document_type", "mode", "strategy"},
	)

	// FallbacksTotal tracks how often a strategy failed and the chain moved on
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "generation",
			Name:      "fallbacks_total",
			Help:      "Total number of renderer fallbacks by failed strategy",
		},
		[]string{"document_type", "failed_strategy"},
	)

	// GenerationDuration tracks end-to-end generation duration in seconds
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Duration of document generations in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"document_type"},
	)

	// PackagesTotal tracks filing package builds by status
	PackagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "packaging",
			Name:      "archives_total",
			Help:      "Total number of filing package builds by status",
		},
		[]string{"status"},
	)

	// PackageDocumentsSkipped tracks documents dropped from a package
	PackageDocumentsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "packaging",
			Name:      "documents_skipped_total",
			Help:      "Total number of documents skipped during packaging",
		},
	)

	// CalculationsTotal tracks guideline calculator invocations
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "calculators",
			Name:      "calculations_total",
			Help:      "Total number of guideline calculations by calculator",
		},
		[]string{"calculator"},
	)
)
