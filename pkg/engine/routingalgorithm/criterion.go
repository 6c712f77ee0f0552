package routingalgorithm

import (
	"fmt"
	"strings"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"
)

// Criterion selects the accumulator a query minimizes. The two others are
// carried along the chosen path without being optimized.
type Criterion int

const (
	ByDistance Criterion = iota
	ByDuration
	ByCost
)

// Value returns the accumulator of w selected by c.
func (c Criterion) Value(w datastructure.Weights) int64 {
	switch c {
	case ByDuration:
		return w.Duration
	case ByCost:
		return w.Cost
	default:
		return w.Distance
	}
}

func (c Criterion) String() string {
	switch c {
	case ByDuration:
		return "duration"
	case ByCost:
		return "cost"
	default:
		return "distance"
	}
}

func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "distance":
		return ByDistance, nil
	case "duration":
		return ByDuration, nil
	case "cost":
		return ByCost, nil
	}
	return ByDistance, domain.WrapErrorf(fmt.Errorf("got %q", s), domain.ErrBadParamInput,
		"criterion must be one of distance, duration, cost")
}
