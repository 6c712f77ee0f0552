// Package flightnetwork owns the airports and routes of a flight network.
//
// A FlightNetwork is built once (airports first, then routes between airports
// that already exist) and is only read afterwards. Concurrent readers are fine
// as long as nobody keeps adding airports or routes while queries run.
package flightnetwork

import (
	"iter"
	"log/slog"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"
	"lintang/flightnav/pkg/util"

	"github.com/dhconnelly/rtreego"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// DefaultCapacity is the maximum number of airports of a network built without
// WithCapacity.
const DefaultCapacity = 100

type FlightNetwork struct {
	airports []datastructure.Airport
	// routes[i] holds the outgoing routes of airport i in insertion order.
	routes    [][]datastructure.Route
	numRoutes int
	codeIdx   map[string]int
	capacity  int

	tree *rtreego.Rtree

	log      *slog.Logger
	validate *validator.Validate
	trans    ut.Translator
}

type Option func(*FlightNetwork)

func WithCapacity(capacity int) Option {
	return func(fn *FlightNetwork) {
		fn.capacity = capacity
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(fn *FlightNetwork) {
		fn.log = log
	}
}

func New(opts ...Option) *FlightNetwork {
	fn := &FlightNetwork{
		airports: make([]datastructure.Airport, 0),
		routes:   make([][]datastructure.Route, 0),
		codeIdx:  make(map[string]int),
		capacity: DefaultCapacity,
		tree:     rtreego.NewTree(2, 2, 8), // lat/lon, small fan-out for small networks
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(fn)
	}
	fn.validate, fn.trans = util.NewValidator()
	return fn
}

// AddAirport appends a new airport and returns its index. Adding a code that
// already exists returns the index of the existing airport and leaves the
// network untouched. A full table is reported with domain.ErrCapacityExceeded.
func (fn *FlightNetwork) AddAirport(code, name string, lat, lon float64) (int, error) {
	airport := datastructure.NewAirport(code, name, lat, lon)
	if err := fn.validate.Struct(airport); err != nil {
		return -1, domain.WrapErrorf(util.TranslateError(err, fn.trans), domain.ErrInvalidAirport,
			"airport %q is not valid", code)
	}

	if len(fn.airports) >= fn.capacity {
		fn.log.Warn("maximum number of airports reached", "code", code, "capacity", fn.capacity)
		return -1, domain.WrapErrorf(nil, domain.ErrCapacityExceeded,
			"cannot add airport %q: maximum number of airports (%d) reached", code, fn.capacity)
	}

	if idx, ok := fn.codeIdx[code]; ok {
		fn.log.Info("airport already exists", "code", code, "index", idx)
		return idx, nil
	}

	idx := len(fn.airports)
	fn.airports = append(fn.airports, airport)
	fn.routes = append(fn.routes, nil)
	fn.codeIdx[code] = idx
	fn.tree.Insert(newAirportPoint(airport, idx))
	return idx, nil
}

// FindAirportIndex returns the index of the airport with the given code.
func (fn *FlightNetwork) FindAirportIndex(code string) (int, bool) {
	idx, ok := fn.codeIdx[code]
	return idx, ok
}

// AddRoute adds a directed route between two existing airports. If either code
// is unknown the route is dropped and domain.ErrUnknownEndpoint is returned.
func (fn *FlightNetwork) AddRoute(srcCode, destCode string, distance, duration, cost int64) error {
	srcIdx, srcOk := fn.FindAirportIndex(srcCode)
	destIdx, destOk := fn.FindAirportIndex(destCode)
	if !srcOk || !destOk {
		fn.log.Warn("one or both airports not found", "src", srcCode, "dest", destCode)
		return domain.WrapErrorf(nil, domain.ErrUnknownEndpoint,
			"route %s -> %s: one or both airports not found", srcCode, destCode)
	}

	route := datastructure.NewRoute(srcIdx, destIdx, distance, duration, cost)
	if err := fn.validate.Struct(route); err != nil {
		return domain.WrapErrorf(util.TranslateError(err, fn.trans), domain.ErrInvalidRoute,
			"route %s -> %s is not valid", srcCode, destCode)
	}

	fn.routes[srcIdx] = append(fn.routes[srcIdx], route)
	fn.numRoutes++
	return nil
}

// Neighbors yields the outgoing routes of the airport at idx, the most recently
// added first. Every call starts again from the most recent route.
func (fn *FlightNetwork) Neighbors(idx int) iter.Seq[datastructure.Route] {
	return func(yield func(datastructure.Route) bool) {
		routes := fn.routes[idx]
		for i := len(routes) - 1; i >= 0; i-- {
			if !yield(routes[i]) {
				return
			}
		}
	}
}

func (fn *FlightNetwork) Airport(idx int) datastructure.Airport {
	return fn.airports[idx]
}

// Airports returns a copy of the airport table in index order.
func (fn *FlightNetwork) Airports() []datastructure.Airport {
	airports := make([]datastructure.Airport, len(fn.airports))
	copy(airports, fn.airports)
	return airports
}

func (fn *FlightNetwork) NumAirports() int {
	return len(fn.airports)
}

func (fn *FlightNetwork) NumRoutes() int {
	return fn.numRoutes
}

func (fn *FlightNetwork) Capacity() int {
	return fn.capacity
}
