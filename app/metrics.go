package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts applied operations and moved tokens.
type Metrics struct {
	operations *prometheus.CounterVec
	tokens     *prometheus.CounterVec
	cache      *prometheus.CounterVec
}

// NewMetrics registers the engine's collectors with registry.
// A nil registry gives collectors that are counted but never exported.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorfund_operations_total",
			Help: "Total number of operations by kind and result code",
		}, []string{"operation", "code"}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorfund_tokens_moved_total",
			Help: "Total amount of tokens moved by rewards and tips",
		}, []string{"operation"}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorfund_post_cache_total",
			Help: "Post reader cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) observe(operation string, code string) {
	m.operations.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) moved(operation string, amount uint64) {
	m.tokens.WithLabelValues(operation).Add(float64(amount))
}

func (m *Metrics) cacheHit(hit bool) {
	if hit {
		m.cache.WithLabelValues("hit").Inc()
	} else {
		m.cache.WithLabelValues("miss").Inc()
	}
}
