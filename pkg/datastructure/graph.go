package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// Weights are the three accumulators carried along a route. All of them are
// non-negative.
type Weights struct {
	Distance int64 `yaml:"distance" validate:"gte=0"`
	Duration int64 `yaml:"duration" validate:"gte=0"`
	Cost     int64 `yaml:"cost" validate:"gte=0"`
}

func (w Weights) Add(o Weights) Weights {
	return Weights{
		Distance: w.Distance + o.Distance,
		Duration: w.Duration + o.Duration,
		Cost:     w.Cost + o.Cost,
	}
}

func (w Weights) Sub(o Weights) Weights {
	return Weights{
		Distance: w.Distance - o.Distance,
		Duration: w.Duration - o.Duration,
		Cost:     w.Cost - o.Cost,
	}
}

// Airport is a node of the flight network. Once added to a network it is never
// mutated; everything else refers to it by index.
type Airport struct {
	Code string  `validate:"required,max=3,alphanum,uppercase"`
	Name string  `validate:"max=64"`
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
}

func NewAirport(code, name string, lat, lon float64) Airport {
	return Airport{
		Code: code,
		Name: name,
		Lat:  lat,
		Lon:  lon,
	}
}

func (a Airport) Coordinate() Coordinate {
	return NewCoordinate(a.Lat, a.Lon)
}

// Route is a directed edge between two airport indices.
type Route struct {
	From int
	To   int
	Weights
}

func NewRoute(from, to int, distance, duration, cost int64) Route {
	return Route{
		From: from,
		To:   to,
		Weights: Weights{
			Distance: distance,
			Duration: duration,
			Cost:     cost,
		},
	}
}

// RenderPath encodes the airport coordinates of path as a google polyline.
func RenderPath(path []Airport) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
