package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	batchTotal       *prometheus.CounterVec
	batchDuration    *prometheus.HistogramVec
	batchInFlight    prometheus.Gauge
	evaluationsTotal *prometheus.CounterVec
	deviationsTotal  *prometheus.CounterVec
	analysisFailures prometheus.Counter
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	batchTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "worker",
			Name:      "analyze_batch_total",
			Help:      "Total processed analysis batches by status.",
		},
		[]string{"service", "status"},
	)
	batchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "av",
			Subsystem: "worker",
			Name:      "analyze_batch_duration_seconds",
			Help:      "Analysis batch duration in seconds by status.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"service", "status"},
	)
	batchInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "av",
			Subsystem: "worker",
			Name:      "analyze_batch_in_flight",
			Help:      "Number of in-flight analysis batches.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	evaluationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "evaluations_total",
			Help:      "Total recorded evaluations by verdict status.",
		},
		[]string{"service", "status"},
	)
	deviationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "deviations_total",
			Help:      "Total opened deviations by type.",
		},
		[]string{"service", "tipo"},
	)
	analysisFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "photo_analysis_failures_total",
			Help:      "Total photos whose classification failed.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		batchTotal,
		batchDuration,
		batchInFlight,
		evaluationsTotal,
		deviationsTotal,
		analysisFailures,
	)

	return &WorkerMetrics{
		registry:         registry,
		batchTotal:       batchTotal,
		batchDuration:    batchDuration,
		batchInFlight:    batchInFlight,
		evaluationsTotal: evaluationsTotal,
		deviationsTotal:  deviationsTotal,
		analysisFailures: analysisFailures,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartBatch() {
	m.batchInFlight.Inc()
}

func (m *WorkerMetrics) FinishBatch(service string, duration time.Duration, err error) {
	m.batchInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.batchTotal.WithLabelValues(service, status).Inc()
	m.batchDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) EvaluationRecorded(status domain.Status) {
	m.evaluationsTotal.WithLabelValues("worker", string(status)).Inc()
}

func (m *WorkerMetrics) DeviationCreated(tipo domain.TipoDesvio) {
	m.deviationsTotal.WithLabelValues("worker", string(tipo)).Inc()
}

func (m *WorkerMetrics) PhotoAnalysisFailed() {
	m.analysisFailures.Inc()
}
