// Package metrics provides Prometheus metrics for quantity coercion.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drfirst/go-concept/pkg/concept"
)

// Metrics holds coercion metrics. It satisfies concept.Observer.
type Metrics struct {
	QuantitiesCoerced  prometheus.Counter
	CoercionRejections *prometheus.CounterVec
}

var _ concept.Observer = (*Metrics)(nil)

// New creates the metrics and registers them with reg, or with the default
// registerer when reg is nil
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		QuantitiesCoerced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "concept_quantities_coerced_total",
			Help: "Total quantity contents accepted by coercion",
		}),
		CoercionRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concept_coercion_rejections_total",
			Help: "Total quantity contents rejected by coercion",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.QuantitiesCoerced,
		m.CoercionRejections,
	)

	return m
}

// Install registers m as the process-wide coercion observer
func (m *Metrics) Install() {
	concept.SetObserver(m)
}

// Coerced counts an accepted content value
func (m *Metrics) Coerced() {
	m.QuantitiesCoerced.Inc()
}

// Rejected counts a rejected content value by error kind
func (m *Metrics) Rejected(kind concept.Kind) {
	m.CoercionRejections.WithLabelValues(kind.String()).Inc()
}
