// Package metrics provides Prometheus instrumentation for feather streams.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for instrumented streams.
type Registry struct {
	// StreamPulls counts every pull made on an instrumented stage.
	StreamPulls *prometheus.CounterVec
	// StreamItems counts pulls that yielded a value.
	StreamItems *prometheus.CounterVec
	// StreamExhausted counts stages reaching exhaustion; at most once per stage.
	StreamExhausted *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by instrumented streams.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig creates a registry honouring the namespace and const
// labels of cfg. A nil cfg.Registry falls back to prometheus.DefaultRegisterer.
func NewRegistryWithConfig(cfg Config) *Registry {
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Registry{
		StreamPulls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stream",
				Name:        "pulls_total",
				Help:        "Total number of pulls on instrumented stream stages",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stream",
				Name:        "items_total",
				Help:        "Total number of items yielded by instrumented stream stages",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),

		StreamExhausted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stream",
				Name:        "exhausted_total",
				Help:        "Total number of instrumented stream stages that reached exhaustion",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),
	}
}
