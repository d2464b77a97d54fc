package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	MetricsPath string
	Namespace   string
}

// Service owns the prometheus registry and the telemetry collectors
type Service struct {
	config   Config
	registry *prometheus.Registry

	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
	storage  *prometheus.HistogramVec
}

// NewService creates a new monitoring service with its own registry
func NewService(config Config) *Service {
	if config.Namespace == "" {
		config.Namespace = "telemetry"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}

	s := &Service{
		config:   config,
		registry: prometheus.NewRegistry(),
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "samples_accepted_total",
			Help:      "Samples persisted, by sample kind and insert strategy.",
		}, []string{"kind", "strategy"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "samples_rejected_total",
			Help:      "Write requests rejected, by sample kind and error kind.",
		}, []string{"kind", "reason"}),
		storage: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "storage_duration_seconds",
			Help:      "Time spent in storage calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	s.registry.MustRegister(
		s.accepted,
		s.rejected,
		s.storage,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	nuts.L.Infof("[Monitoring] Metrics registered under namespace %s", config.Namespace)
	return s
}

// RecordAccepted counts n persisted samples
func (s *Service) RecordAccepted(kind, strategy string, n int) {
	s.accepted.WithLabelValues(kind, strategy).Add(float64(n))
}

// RecordRejected counts one rejected write request
func (s *Service) RecordRejected(kind, reason string) {
	s.rejected.WithLabelValues(kind, reason).Inc()
}

// ObserveStorage records the duration of one storage call
func (s *Service) ObserveStorage(operation string, d time.Duration) {
	s.storage.WithLabelValues(operation).Observe(d.Seconds())
}

// Path returns the route the metrics handler is mounted on
func (s *Service) Path() string {
	return s.config.MetricsPath
}

// Registry exposes the underlying registry
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the prometheus exposition format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
