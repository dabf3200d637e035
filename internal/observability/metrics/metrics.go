package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "manquants_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	reportTotal      *prometheus.CounterVec
	reportLatency    *prometheus.HistogramVec
	deliveriesValued *prometheus.CounterVec
	deliveriesSkip   *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	documentsStored *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Calling it more
// than once is a no-op.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		reportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_generate_total",
				Help: "Total shortage reports generated by report and result",
			},
			[]string{"report", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_generate_latency_seconds",
				Help:    "Shortage report generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		)
		deliveriesValued = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "deliveries_valued_total",
				Help: "Deliveries valued by report",
			},
			[]string{"report"},
		)
		deliveriesSkip = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "deliveries_skipped_total",
				Help: "Deliveries left out of a report because a price was missing",
			},
			[]string{"report"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Export rendering latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)
		documentsStored = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "documents_stored_total",
				Help: "Delivery documents stored by kind and result",
			},
			[]string{"kind", "result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			reportTotal,
			reportLatency,
			deliveriesValued,
			deliveriesSkip,
			exportTotal,
			exportLatency,
			documentsStored,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveReport records a report generation with the number of valued and skipped deliveries.
func ObserveReport(report, result string, valued, skipped int, duration time.Duration) {
	if reportTotal == nil {
		return
	}
	reportTotal.WithLabelValues(report, result).Inc()
	reportLatency.WithLabelValues(report).Observe(duration.Seconds())
	if valued > 0 {
		deliveriesValued.WithLabelValues(report).Add(float64(valued))
	}
	if skipped > 0 {
		deliveriesSkip.WithLabelValues(report).Add(float64(skipped))
	}
}

// ObserveExport records an export rendering.
func ObserveExport(format, result string, duration time.Duration) {
	if exportTotal == nil {
		return
	}
	exportTotal.WithLabelValues(format, result).Inc()
	exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
}

// IncDocumentStored records a stored (or failed) delivery document.
func IncDocumentStored(kind, result string) {
	if documentsStored == nil {
		return
	}
	documentsStored.WithLabelValues(kind, result).Inc()
}
