package routingalgorithm

import (
	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"
	"lintang/flightnav/pkg/util"
)

// SPResult holds the per-airport accumulators and predecessor links of one
// shortest path query. Only entries of airports settled before the query
// stopped are final.
type SPResult struct {
	Source   int
	Dest     int
	Dist     []int64
	Duration []int64
	Cost     []int64
	Prev     []int
	Reached  bool
}

// Weights returns the three accumulators of airport v.
func (r SPResult) Weights(v int) datastructure.Weights {
	return datastructure.Weights{
		Distance: r.Dist[v],
		Duration: r.Duration[v],
		Cost:     r.Cost[v],
	}
}

// Total returns the accumulators of the destination.
func (r SPResult) Total() datastructure.Weights {
	return r.Weights(r.Dest)
}

func (r *SPResult) set(v int, w datastructure.Weights) {
	r.Dist[v] = w.Distance
	r.Duration[v] = w.Duration
	r.Cost[v] = w.Cost
}

// Path returns the airports from source to destination.
func (r SPResult) Path() ([]int, error) {
	if !r.Reached {
		return nil, domain.WrapErrorf(nil, domain.ErrUnreachable,
			"airport %d is unreachable from airport %d", r.Dest, r.Source)
	}
	return ReconstructPath(r.Prev, r.Dest), nil
}

// ReconstructPath walks prev backward from dest until an airport without
// predecessor and returns the walk in forward order.
func ReconstructPath(prev []int, dest int) []int {
	path := []int{dest}
	for curr := dest; prev[curr] != NoPredecessor && len(path) <= len(prev); {
		curr = prev[curr]
		path = append(path, curr)
	}
	util.ReverseG(path)
	return path
}
