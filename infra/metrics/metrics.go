// Package metrics exposes engine counters over Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	OrdersSubmitted prometheus.Counter
	OrdersRejected  prometheus.Counter
	CancelsAccepted prometheus.Counter
	TradesExecuted  prometheus.Counter
	EventsPublished prometheus.Counter
	MatchLatency    prometheus.Histogram
	RestingOrders   *prometheus.GaugeVec
}

func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		OrdersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Orders accepted into the inbound queue",
		}),
		OrdersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_rejected_total",
			Help:      "Orders refused at the API boundary",
		}),
		CancelsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancels_accepted_total",
			Help:      "Cancellations that removed a resting order",
		}),
		TradesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_executed_total",
			Help:      "Trades emitted by the matching loop",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Engine events pushed to the outbound queue",
		}),
		MatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matching_latency_nanoseconds",
			Help:      "Per-order time spent in the matching loop",
			Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 25000, 100000},
		}),
		RestingOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resting_levels",
			Help:      "Price levels currently resting, per side",
		}, []string{"side"}),
	}

	registry.MustRegister(
		m.OrdersSubmitted,
		m.OrdersRejected,
		m.CancelsAccepted,
		m.TradesExecuted,
		m.EventsPublished,
		m.MatchLatency,
		m.RestingOrders,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
