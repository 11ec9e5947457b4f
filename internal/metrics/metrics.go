// Package metrics exposes Prometheus collectors for graph mutations and searches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics groups every graphops collector.
type Metrics struct {
	Mutations     *prometheus.CounterVec
	Searches      *prometheus.CounterVec
	ExpandedNodes *prometheus.HistogramVec
	Nodes         prometheus.Gauge
	Edges         prometheus.Gauge
}

// New registers the collectors on reg. A nil reg leaves them unregistered,
// which keeps the shell usable when metrics are off.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphops_mutations_total",
			Help: "Total number of graph mutations, labelled by operation and outcome.",
		}, []string{"op", "outcome"}),

		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphops_searches_total",
			Help: "Total number of searches, labelled by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),

		ExpandedNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphops_search_expanded_nodes",
			Help:    "Number of nodes explored per search.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000, 10000},
		}, []string{"algorithm"}),

		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "graphops_nodes",
			Help: "Current number of nodes in the graph.",
		}),

		Edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "graphops_edges",
			Help: "Current number of edges in the graph.",
		}),
	}
}

// Mutation counts one mutation attempt; err == nil counts as ok.
func (m *Metrics) Mutation(op string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeRejected
	}
	m.Mutations.WithLabelValues(op, outcome).Inc()
}

// Search counts one search and, when it ran, the number of explored nodes.
func (m *Metrics) Search(algorithm string, found bool, explored int, err error) {
	outcome := OutcomeNotFound
	switch {
	case err != nil:
		outcome = OutcomeError
	case found:
		outcome = OutcomeFound
	}
	m.Searches.WithLabelValues(algorithm, outcome).Inc()
	if err == nil {
		m.ExpandedNodes.WithLabelValues(algorithm).Observe(float64(explored))
	}
}

// Observe sets the size gauges from g.
func (m *Metrics) Observe(g *core.Graph) {
	stats := g.Stats()
	m.Nodes.Set(float64(stats.NodeCount))
	m.Edges.Set(float64(stats.EdgeCount))
}
