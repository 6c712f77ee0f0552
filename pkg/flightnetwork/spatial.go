package flightnetwork

import (
	"math"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/s2"
)

const earthRadiusKM = 6371.0

// tol is the half side (in degrees) of the box stored for every airport.
var tol = 0.0001

// nearestCandidates is how many R-tree hits are re-ranked by great-circle
// distance. The tree ranks by planar lat/lon distance which is off near the
// poles and the antimeridian.
const nearestCandidates = 4

type airportPoint struct {
	location rtreego.Point
	idx      int
}

func newAirportPoint(a datastructure.Airport, idx int) *airportPoint {
	return &airportPoint{
		location: rtreego.Point{a.Lat, a.Lon},
		idx:      idx,
	}
}

func (p *airportPoint) Bounds() rtreego.Rect {
	return p.location.ToRect(tol)
}

// NearestAirport returns the index of the airport closest to (lat, lon).
func (fn *FlightNetwork) NearestAirport(lat, lon float64) (int, error) {
	if len(fn.airports) == 0 {
		return -1, domain.WrapErrorf(nil, domain.ErrNotFound, "network has no airports")
	}

	k := min(nearestCandidates, len(fn.airports))
	best, bestDist := -1, math.Inf(1)
	for _, obj := range fn.tree.NearestNeighbors(k, rtreego.Point{lat, lon}) {
		p, ok := obj.(*airportPoint)
		if !ok || p == nil {
			continue
		}
		d := greatCircleKM(lat, lon, fn.airports[p.idx].Lat, fn.airports[p.idx].Lon)
		if d < bestDist {
			best, bestDist = p.idx, d
		}
	}
	if best == -1 {
		return -1, domain.WrapErrorf(nil, domain.ErrNotFound, "no airport near %f,%f", lat, lon)
	}
	return best, nil
}

// GreatCircleKM is the great-circle distance in kilometers between two
// airports of the network.
func (fn *FlightNetwork) GreatCircleKM(a, b int) float64 {
	from, to := fn.airports[a], fn.airports[b]
	return greatCircleKM(from.Lat, from.Lon, to.Lat, to.Lon)
}

func greatCircleKM(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusKM
}
