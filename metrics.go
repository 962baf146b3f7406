package fabric

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes recorded by Metrics.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeAbandoned = "abandoned"
	OutcomeCanceled  = "canceled"
)

// Metrics manages Prometheus metrics for native client operations and the
// partition mirror. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry
	server   *http.Server
	addr     net.Addr

	// Operation metrics
	OperationsTotal    *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	OperationsInFlight *prometheus.GaugeVec
	RetriesTotal       *prometheus.CounterVec

	// Mirror metrics
	MirrorSyncTotal    *prometheus.CounterVec
	MirrorSyncDuration *prometheus.HistogramVec
	MirrorPartitions   *prometheus.GaugeVec
}

// NewMetrics creates a metrics manager with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sf_operations_total",
			Help: "Native operations by final outcome",
		}, []string{"op", "outcome"}),

		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sf_operation_duration_seconds",
			Help:    "Time from Begin to published result in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"op"}),

		OperationsInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sf_operations_in_flight",
			Help: "Native operations waiting for completion",
		}, []string{"op"}),

		RetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sf_retries_total",
			Help: "Retries of transient native failures",
		}, []string{"op", "code"}),

		MirrorSyncTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sf_mirror_sync_total",
			Help: "Partition mirror sync passes",
		}, []string{"bucket", "status"}),

		MirrorSyncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sf_mirror_sync_duration_seconds",
			Help:    "Partition mirror sync duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"bucket"}),

		MirrorPartitions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sf_mirror_partitions",
			Help: "Partitions published per service",
		}, []string{"bucket", "service"}),
	}

	registry.MustRegister(
		m.OperationsTotal,
		m.OperationDuration,
		m.OperationsInFlight,
		m.RetriesTotal,
		m.MirrorSyncTotal,
		m.MirrorSyncDuration,
		m.MirrorPartitions,
	)

	// Also register default Go metrics
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	return m
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Start serves /metrics on addr until ctx is done.
func (m *Metrics) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	m.addr = ln.Addr()

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	m.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		_ = m.server.Serve(ln)
	}()

	go func() {
		<-ctx.Done()
		m.Stop()
	}()

	return nil
}

// Addr returns the address the metrics server listens on, once started.
func (m *Metrics) Addr() net.Addr {
	return m.addr
}

// Stop stops the metrics server.
func (m *Metrics) Stop() {
	if m.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		m.server.Shutdown(ctx)
	}
}

// operationStarted marks op in flight and returns the function recording its
// outcome.
func (m *Metrics) operationStarted(op string) func(outcome string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.OperationsInFlight.WithLabelValues(op).Inc()
	return func(outcome string) {
		m.OperationsInFlight.WithLabelValues(op).Dec()
		m.OperationsTotal.WithLabelValues(op, outcome).Inc()
		m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// ObserveRetry counts a retry of op after a failure with code.
func (m *Metrics) ObserveRetry(op string, code ErrorCode) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(op, code.String()).Inc()
}

// ObserveMirrorSync records one sync pass of a mirror bucket.
func (m *Metrics) ObserveMirrorSync(bucket string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.MirrorSyncDuration.WithLabelValues(bucket).Observe(duration.Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	m.MirrorSyncTotal.WithLabelValues(bucket, status).Inc()
}

// SetMirrorPartitions records how many partitions of service are published.
func (m *Metrics) SetMirrorPartitions(bucket, service string, n int) {
	if m == nil {
		return
	}
	m.MirrorPartitions.WithLabelValues(bucket, service).Set(float64(n))
}
