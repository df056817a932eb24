// Package instrumentation exposes Prometheus metrics for the API process:
// request counts and latencies labeled by management operation, analytics
// delivery drops, and process utilization gauges sampled from the host.
package instrumentation

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/esbridge/esbridge/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/mackerelio/go-osstat/cpu"
	"github.com/mackerelio/go-osstat/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	readTimeout             = 5 * time.Second
	writeTimeout            = 10 * time.Second
	auditInterval           = 5 * time.Second
)

type MetricsServer struct {
	log      logrus.FieldLogger
	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *ApiMetrics
}

// ApiMetrics collects the instrumentation shared between the API server and
// the metrics listener. The API server feeds the request series through
// ServerMiddleware and the analytics publisher reports drops through
// AnalyticsDropped.
type ApiMetrics struct {
	SloMax float64

	Requests        *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
	SloViolations   prometheus.Counter
	AnalyticsDrops  prometheus.Counter
	BackendFailures prometheus.Counter

	CpuUtilization    prometheus.Gauge
	MemoryUtilization prometheus.Gauge
	DiskUtilization   prometheus.Gauge
}

func NewApiMetrics(cfg *config.Config) *ApiMetrics {
	var sloMax float64
	var latencyBins []float64
	if cfg.Metrics != nil {
		sloMax = cfg.Metrics.SloMax
		latencyBins = cfg.Metrics.LatencyBins
	}
	return &ApiMetrics{
		SloMax: sloMax,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esbridge_api_requests_total",
			Help: "Number of requests served, by management operation and status code",
		}, []string{"operation", "code"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "esbridge_api_request_duration_seconds",
			Help:    "Distribution of response latencies, by management operation",
			Buckets: latencyBins,
		}, []string{"operation"}),
		SloViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "esbridge_api_slo_violations_total",
			Help: "Number of successful responses slower than the configured SLO",
		}),
		AnalyticsDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "esbridge_analytics_events_dropped_total",
			Help: "Number of usage events dropped because the publisher buffer was full or delivery failed",
		}),
		BackendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "esbridge_api_backend_failures_total",
			Help: "Number of responses that reported a server-side error",
		}),
		CpuUtilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "esbridge_api_cpu_utilization",
			Help: "API server CPU utilization",
		}),
		MemoryUtilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "esbridge_api_memory_utilization",
			Help: "API server memory utilization",
		}),
		DiskUtilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "esbridge_api_disk_utilization",
			Help: "API server storage utilization",
		}),
	}
}

func (m *ApiMetrics) RegisterWith(reg *prometheus.Registry) {
	reg.MustRegister(m.Requests)
	reg.MustRegister(m.RequestLatency)
	reg.MustRegister(m.SloViolations)
	reg.MustRegister(m.AnalyticsDrops)
	reg.MustRegister(m.BackendFailures)
	reg.MustRegister(m.CpuUtilization)
	reg.MustRegister(m.MemoryUtilization)
	reg.MustRegister(m.DiskUtilization)
}

// AnalyticsDropped is handed to the analytics publisher as its drop callback.
func (m *ApiMetrics) AnalyticsDropped() {
	m.AnalyticsDrops.Inc()
}

// We need to access the HTTP status code in our instrumentation middleware.
// ResponseWriter does not let us do this, so wrap it in an
// interface that will catch and save the written status code
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusResponseWriter) WriteHeader(statusCode int) {
	sw.statusCode = statusCode
	sw.ResponseWriter.WriteHeader(statusCode)
}

// operationLabel names the request after the matched route so that counters
// stay bounded even when callers probe arbitrary paths.
func operationLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return "unmatched"
	}
	return r.Method + " " + pattern
}

func (m *ApiMetrics) ServerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)

		operation := operationLabel(r)
		statusClass := sw.statusCode - sw.statusCode%100
		thisLatency := time.Since(start).Seconds()

		m.Requests.WithLabelValues(operation, strconv.Itoa(sw.statusCode)).Inc()
		m.RequestLatency.WithLabelValues(operation).Observe(thisLatency)

		if statusClass == 500 {
			m.BackendFailures.Inc()
		}
		if statusClass == 200 && m.SloMax > 0 && thisLatency > m.SloMax {
			m.SloViolations.Inc()
		}
	})
}

func NewMetricsServer(
	log logrus.FieldLogger,
	cfg *config.Config,
	metrics *ApiMetrics,
) *MetricsServer {
	return &MetricsServer{
		log:      log,
		cfg:      cfg,
		metrics:  metrics,
		registry: prometheus.NewRegistry(),
	}
}

func (m *MetricsServer) Run(ctx context.Context) error {
	m.metrics.RegisterWith(m.registry)

	srv := &http.Server{
		Addr:         m.cfg.Metrics.Address,
		Handler:      promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go m.auditCpuWorker(ctx)
	go m.auditMemoryWorker(ctx)
	go m.auditDiskWorker(ctx)

	go func() {
		<-ctx.Done()
		m.log.Println("Shutdown signal received:", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	m.log.Printf("Serving metrics on %s...", m.cfg.Metrics.Address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (m *MetricsServer) auditCpuWorker(ctx context.Context) {
	var lastIdle uint64 = 0
	var lastTotal uint64 = 0

	ticker := time.NewTicker(auditInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Stopping CPU audit")
			return
		case <-ticker.C:
			stats, err := cpu.Get()
			if err != nil {
				m.log.Errorf("Could not audit cpu usage: %v", err)
				continue
			}

			// stats from /proc/stat increase monotonically, so we must
			// compute the delta from our last audit
			m.metrics.CpuUtilization.Set(
				1.0 - float64(stats.Idle-lastIdle)/float64(stats.Total-lastTotal),
			)
			lastIdle = stats.Idle
			lastTotal = stats.Total
		}
	}
}

func (m *MetricsServer) auditMemoryWorker(ctx context.Context) {
	ticker := time.NewTicker(auditInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Stopping memory audit")
			return
		case <-ticker.C:
			stats, err := memory.Get()
			if err != nil {
				m.log.Errorf("could not audit memory usage: %v", err)
				continue
			}

			m.metrics.MemoryUtilization.Set(
				float64(stats.Used) / float64(stats.Total),
			)
		}
	}
}

func (m *MetricsServer) auditDiskWorker(ctx context.Context) {
	ticker := time.NewTicker(auditInterval)
	defer ticker.Stop()

	var stat unix.Statfs_t

	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Stopping disk audit")
			return
		case <-ticker.C:
			if err := unix.Statfs("/", &stat); err != nil {
				m.log.Errorf("could not audit disk usage: %v", err)
				continue
			}

			m.metrics.DiskUtilization.Set(
				1.0 - float64(stat.Bfree)/float64(stat.Blocks),
			)
		}
	}
}
