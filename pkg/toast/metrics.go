package toast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus toast metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toastkit").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics is an Observer that records toast lifecycle events.
//
// Metrics collected:
//   - toastkit_toasts_shown_total: Counter of shown toasts by variant
//   - toastkit_toasts_dismissed_total: Counter of dismissals by reason
//   - toastkit_toasts_active: Gauge of toasts still in the document
type Metrics struct {
	shown     *prometheus.CounterVec
	dismissed *prometheus.CounterVec
	active    prometheus.Gauge
}

// NewMetrics registers the toast metrics.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "toastkit"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "toasts_shown_total",
			Help:      "Total number of toasts shown",
		}, []string{"variant"}),

		dismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "toasts_dismissed_total",
			Help:      "Total number of toast dismissals by reason",
		}, []string{"reason"}),

		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "toasts_active",
			Help:      "Number of toasts currently in the document",
		}),
	}
}

// OnToastEvent implements Observer.
func (m *Metrics) OnToastEvent(e Event) {
	switch e.Kind {
	case EventShown:
		// Variant keeps label cardinality bounded for arbitrary types.
		m.shown.WithLabelValues(string(e.Variant)).Inc()
		m.active.Inc()
	case EventExiting:
		m.dismissed.WithLabelValues(string(e.Reason)).Inc()
	case EventRemoved:
		m.active.Dec()
	}
}
