package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	evaluationsTotal   *prometheus.CounterVec
	deviationsTotal    *prometheus.CounterVec
	analysisFailures   prometheus.Counter
	photoUploadsTotal  prometheus.Counter
	photosPurgedTotal  prometheus.Counter
	uploadedPhotoBytes prometheus.Histogram
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "av",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "av",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
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
	photoUploadsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "photo_uploads_total",
			Help:      "Total accepted photo uploads.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	photosPurgedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "photos_purged_total",
			Help:      "Total photos removed by the retention sweep.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	uploadedPhotoBytes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "av",
			Subsystem: "audit",
			Name:      "uploaded_photo_bytes",
			Help:      "Compressed size of stored photos in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		evaluationsTotal,
		deviationsTotal,
		analysisFailures,
		photoUploadsTotal,
		photosPurgedTotal,
		uploadedPhotoBytes,
	)

	return &HTTPServerMetrics{
		registry:           registry,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		evaluationsTotal:   evaluationsTotal,
		deviationsTotal:    deviationsTotal,
		analysisFailures:   analysisFailures,
		photoUploadsTotal:  photoUploadsTotal,
		photosPurgedTotal:  photosPurgedTotal,
		uploadedPhotoBytes: uploadedPhotoBytes,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses id-bearing paths so path labels stay low-cardinality.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/photos/"):
		return "/v1/photos/{photo_id}"
	case strings.HasPrefix(path, "/v1/desvios/"):
		return "/v1/desvios/{desvio_id}"
	case strings.HasPrefix(path, "/v1/decisiones/"):
		return "/v1/decisiones/{decision_id}"
	case strings.HasPrefix(path, "/v1/responsables/"):
		return "/v1/responsables/{responsable_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) EvaluationRecorded(status domain.Status) {
	m.evaluationsTotal.WithLabelValues("api", string(status)).Inc()
}

func (m *HTTPServerMetrics) DeviationCreated(tipo domain.TipoDesvio) {
	m.deviationsTotal.WithLabelValues("api", string(tipo)).Inc()
}

func (m *HTTPServerMetrics) PhotoAnalysisFailed() {
	m.analysisFailures.Inc()
}

func (m *HTTPServerMetrics) PhotoUploaded(sizeBytes int) {
	m.photoUploadsTotal.Inc()
	m.uploadedPhotoBytes.Observe(float64(sizeBytes))
}

func (m *HTTPServerMetrics) PhotosPurged(count int) {
	if count <= 0 {
		return
	}
	m.photosPurgedTotal.Add(float64(count))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
