package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all client-side metrics
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	SessionExpirations prometheus.Counter
	BytesDownloaded    prometheus.Counter
}

// New creates the client metric set. Metrics are not registered with a
// registry here; callers that want exposition register them explicitly.
func New(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of API requests issued",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		SessionExpirations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_expirations_total",
			Help:      "Number of 401 responses that forced a session wipe",
		}),
		BytesDownloaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_downloaded_total",
			Help:      "Total bytes fetched by binary endpoints",
		}),
	}
}

// Register attaches all metrics to the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.RequestsTotal,
		m.RequestDuration,
		m.SessionExpirations,
		m.BytesDownloaded,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
