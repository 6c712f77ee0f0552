// Package guidance turns the result of a shortest path query into a flight
// itinerary: the legs flown, their weights, and a printable summary.
package guidance

import (
	"fmt"
	"io"
	"strings"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"
	"lintang/flightnav/pkg/engine/routingalgorithm"
	"lintang/flightnav/pkg/util"
)

type AirportSource interface {
	NumAirports() int
	Airport(idx int) datastructure.Airport
	GreatCircleKM(a, b int) float64
}

// Leg is one flight of an itinerary. Its weights are the difference of the
// accumulators at both ends, i.e. the weights of the route that was taken.
type Leg struct {
	From     datastructure.Airport
	To       datastructure.Airport
	Weights  datastructure.Weights
	ArcKM    float64
	Bearing  float64
	Heading  string
	MidPoint datastructure.Coordinate
}

type Itinerary struct {
	From     datastructure.Airport
	To       datastructure.Airport
	Found    bool
	Legs     []Leg
	Total    datastructure.Weights
	Polyline string
}

// NewItinerary builds the itinerary of res. An unreached destination is not an
// error: the itinerary is returned with Found set to false.
func NewItinerary(net AirportSource, res routingalgorithm.SPResult) (*Itinerary, error) {
	n := net.NumAirports()
	if res.Source < 0 || res.Source >= n || res.Dest < 0 || res.Dest >= n {
		return nil, domain.WrapErrorf(nil, domain.ErrBadParamInput,
			"query %d -> %d is outside of a network of %d airports", res.Source, res.Dest, n)
	}

	it := &Itinerary{
		From: net.Airport(res.Source),
		To:   net.Airport(res.Dest),
	}
	if !res.Reached {
		return it, nil
	}

	path, err := res.Path()
	if err != nil {
		return nil, err
	}

	it.Found = true
	it.Total = res.Total()
	it.Legs = make([]Leg, 0, len(path)-1)
	airports := make([]datastructure.Airport, 0, len(path))
	airports = append(airports, net.Airport(path[0]))

	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		from, to := net.Airport(u), net.Airport(v)
		bearing := BearingTo(from.Lat, from.Lon, to.Lat, to.Lon)
		midLat, midLon := MidPoint(from.Lat, from.Lon, to.Lat, to.Lon)

		it.Legs = append(it.Legs, Leg{
			From:     from,
			To:       to,
			Weights:  res.Weights(v).Sub(res.Weights(u)),
			ArcKM:    util.RoundFloat(net.GreatCircleKM(u, v), 1),
			Bearing:  util.RoundFloat(bearing, 1),
			Heading:  azimuthToCompass(bearing),
			MidPoint: datastructure.NewCoordinate(midLat, midLon),
		})
		airports = append(airports, to)
	}
	it.Polyline = datastructure.RenderPath(airports)
	return it, nil
}

// Codes returns the airport codes along the itinerary, source first.
func (it *Itinerary) Codes() []string {
	if !it.Found {
		return nil
	}
	codes := make([]string, 0, len(it.Legs)+1)
	codes = append(codes, it.From.Code)
	for _, leg := range it.Legs {
		codes = append(codes, leg.To.Code)
	}
	return codes
}

// Render writes the summary of the itinerary:
//
//	Optimal route from DEL to COK:
//	Path: DEL -> MAA -> COK
//	Total Distance: 2260 units
//	Total Duration: 210 minutes
//	Total Cost: 12000 units
func (it *Itinerary) Render(w io.Writer) error {
	var sb strings.Builder
	if !it.Found {
		fmt.Fprintf(&sb, "No path exists from %s to %s\n", it.From.Code, it.To.Code)
	} else {
		fmt.Fprintf(&sb, "Optimal route from %s to %s:\n", it.From.Code, it.To.Code)
		fmt.Fprintf(&sb, "Path: %s\n", strings.Join(it.Codes(), " -> "))
		fmt.Fprintf(&sb, "Total Distance: %d units\n", it.Total.Distance)
		fmt.Fprintf(&sb, "Total Duration: %d minutes\n", it.Total.Duration)
		fmt.Fprintf(&sb, "Total Cost: %d units\n", it.Total.Cost)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderLegs writes one line per leg with the route weights, the great-circle
// length and the compass heading at departure.
func (it *Itinerary) RenderLegs(w io.Writer) error {
	var sb strings.Builder
	for _, leg := range it.Legs {
		fmt.Fprintf(&sb, "%s -> %s: %d units, %d minutes, %d units, %.1f km heading %s\n",
			leg.From.Code, leg.To.Code, leg.Weights.Distance, leg.Weights.Duration, leg.Weights.Cost,
			leg.ArcKM, leg.Heading)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
