package routingalgorithm

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by every query.
type Metrics struct {
	SPQueryCount  *prometheus.CounterVec
	HeapExtracts  prometheus.Counter
	Relaxations   prometheus.Counter
	QueryDuration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SPQueryCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightnav",
			Name:      "shortestpath_query_count",
			Help:      "The total number of shortest path query",
		}, []string{"reached"}),
		HeapExtracts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flightnav",
			Name:      "heap_extract_total",
			Help:      "The total number of airports extracted from the priority queue",
		}),
		Relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flightnav",
			Name:      "relaxation_total",
			Help:      "The total number of successful route relaxations",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flightnav",
			Name:      "shortestpath_duration_seconds",
			Help:      "The duration of a shortest path query",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
	reg.MustRegister(m.SPQueryCount, m.HeapExtracts, m.Relaxations, m.QueryDuration)
	return m
}

func (m *Metrics) observe(reached bool, extracted, relaxed int, took time.Duration) {
	if m == nil {
		return
	}
	m.SPQueryCount.WithLabelValues(strconv.FormatBool(reached)).Inc()
	m.HeapExtracts.Add(float64(extracted))
	m.Relaxations.Add(float64(relaxed))
	m.QueryDuration.Observe(took.Seconds())
}
