package routingalgorithm

import (
	"iter"
	"log/slog"
	"math"
	"time"

	"lintang/flightnav/pkg/datastructure"
)

// Infinity marks an accumulator of an airport that has not been reached.
// Relaxation saturates at Infinity instead of wrapping around.
const Infinity int64 = math.MaxInt64

// NoPredecessor is the Prev value of the source and of unreached airports.
const NoPredecessor = -1

type Graph interface {
	NumAirports() int
	Neighbors(idx int) iter.Seq[datastructure.Route]
}

type RouteAlgorithm struct {
	g         Graph
	criterion Criterion
	metrics   *Metrics
	log       *slog.Logger
}

type Option func(*RouteAlgorithm)

// WithCriterion changes the accumulator being minimized. The default is
// ByDistance.
func WithCriterion(c Criterion) Option {
	return func(rt *RouteAlgorithm) {
		rt.criterion = c
	}
}

func WithMetrics(m *Metrics) Option {
	return func(rt *RouteAlgorithm) {
		rt.metrics = m
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(rt *RouteAlgorithm) {
		rt.log = log
	}
}

func NewRouteAlgorithm(g Graph, opts ...Option) *RouteAlgorithm {
	rt := &RouteAlgorithm{
		g:         g,
		criterion: ByDistance,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *RouteAlgorithm) Criterion() Criterion {
	return rt.criterion
}

// ShortestPath runs Dijkstra from airport from and stops as soon as airport to
// is settled. from and to must be valid airport indices.
//
// Only the accumulator selected by the criterion is compared during
// relaxation; the other two follow whichever path minimizes it.
func (rt *RouteAlgorithm) ShortestPath(from, to int) SPResult {
	start := time.Now()
	n := rt.g.NumAirports()

	res := SPResult{
		Source:   from,
		Dest:     to,
		Dist:     make([]int64, n),
		Duration: make([]int64, n),
		Cost:     make([]int64, n),
		Prev:     make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = Infinity
		res.Duration[v] = Infinity
		res.Cost[v] = Infinity
		res.Prev[v] = NoPredecessor
	}

	unreached := datastructure.Weights{Distance: Infinity, Duration: Infinity, Cost: Infinity}
	heap := NewMinHeap(n, rt.criterion)
	heap.Fill(func(int) HeapEntry {
		return HeapEntry{Weights: unreached}
	})

	res.set(from, datastructure.Weights{})
	_ = heap.DecreaseKey(from, datastructure.Weights{})

	extracted, relaxed := 0, 0
	for !heap.IsEmpty() {
		node, _ := heap.ExtractMin()
		extracted++
		u := node.Airport
		if u == to {
			break
		}

		uw := res.Weights(u)
		if rt.criterion.Value(uw) == Infinity {
			// everything left in the heap is unreachable
			break
		}

		for route := range rt.g.Neighbors(u) {
			v := route.To
			if !heap.IsInHeap(v) {
				continue
			}
			candidate := saturatingAdd(uw, route.Weights)
			if rt.criterion.Value(candidate) < rt.criterion.Value(res.Weights(v)) {
				res.set(v, candidate)
				res.Prev[v] = u
				_ = heap.DecreaseKey(v, candidate)
				relaxed++
			}
		}
	}

	res.Reached = rt.criterion.Value(res.Weights(to)) != Infinity
	if !res.Reached {
		rt.log.Debug("no path exists", "from", from, "to", to, "criterion", rt.criterion)
	}
	rt.metrics.observe(res.Reached, extracted, relaxed, time.Since(start))
	return res
}

func saturatingAdd(a, b datastructure.Weights) datastructure.Weights {
	return datastructure.Weights{
		Distance: addInf(a.Distance, b.Distance),
		Duration: addInf(a.Duration, b.Duration),
		Cost:     addInf(a.Cost, b.Cost),
	}
}

func addInf(a, b int64) int64 {
	if a > Infinity-b {
		return Infinity
	}
	return a + b
}
