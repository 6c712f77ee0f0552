package routingalgorithm

import (
	"lintang/flightnav/pkg/concurrent"
)

type spPair struct {
	from, to int
}

// ManyToMany answers every (from[i], to[j]) query on a pool of workers. Each
// query allocates its own heap and arrays, the graph is only read, so the
// graph must not be modified until ManyToMany returns.
func (rt *RouteAlgorithm) ManyToMany(from []int, to []int, workers int) map[int]map[int]SPResult {
	pairs := make([]spPair, 0, len(from)*len(to))
	for _, s := range from {
		for _, d := range to {
			pairs = append(pairs, spPair{s, d})
		}
	}

	wp := concurrent.NewWorkerPool[spPair, SPResult](workers, len(pairs))
	for _, p := range pairs {
		wp.AddJob(p)
	}
	wp.Close()

	wp.Start(func(p spPair) SPResult {
		return rt.ShortestPath(p.from, p.to)
	})
	wp.Wait()

	spMap := make(map[int]map[int]SPResult, len(from))
	for _, s := range from {
		spMap[s] = make(map[int]SPResult, len(to))
	}
	for res := range wp.CollectResults() {
		spMap[res.Source][res.Dest] = res
	}
	return spMap
}
