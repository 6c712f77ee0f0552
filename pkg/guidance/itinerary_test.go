package guidance_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"
	"lintang/flightnav/pkg/engine/routingalgorithm"
	"lintang/flightnav/pkg/flightnetwork"
	"lintang/flightnav/pkg/guidance"
	"lintang/flightnav/pkg/networkparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func sampleNetwork(t *testing.T) *flightnetwork.FlightNetwork {
	t.Helper()
	doc, err := networkparser.Parse(networkparser.SampleNetwork())
	require.NoError(t, err)
	fn := flightnetwork.New(flightnetwork.WithLogger(discard))
	require.NoError(t, doc.Build(fn))
	return fn
}

func query(t *testing.T, fn *flightnetwork.FlightNetwork, from, to string) routingalgorithm.SPResult {
	t.Helper()
	s, ok := fn.FindAirportIndex(from)
	require.True(t, ok)
	d, ok := fn.FindAirportIndex(to)
	require.True(t, ok)
	return routingalgorithm.NewRouteAlgorithm(fn, routingalgorithm.WithLogger(discard)).ShortestPath(s, d)
}

func TestNewItinerary(t *testing.T) {
	fn := sampleNetwork(t)

	it, err := guidance.NewItinerary(fn, query(t, fn, "DEL", "COK"))
	require.NoError(t, err)

	require.True(t, it.Found)
	assert.Equal(t, []string{"DEL", "MAA", "COK"}, it.Codes())
	assert.Equal(t, datastructure.Weights{Distance: 2260, Duration: 210, Cost: 12000}, it.Total)

	require.Len(t, it.Legs, 2)
	assert.Equal(t, datastructure.Weights{Distance: 1760, Duration: 150, Cost: 8500}, it.Legs[0].Weights)
	assert.Equal(t, datastructure.Weights{Distance: 500, Duration: 60, Cost: 3500}, it.Legs[1].Weights)

	var sum datastructure.Weights
	for _, leg := range it.Legs {
		sum = sum.Add(leg.Weights)
		assert.Greater(t, leg.ArcKM, 0.0)
		assert.GreaterOrEqual(t, leg.Bearing, 0.0)
		assert.Less(t, leg.Bearing, 360.0)
	}
	assert.Equal(t, it.Total, sum)

	// Delhi to Chennai is flown almost due south
	assert.Equal(t, "South", it.Legs[0].Heading)

	coords, _, err := polyline.DecodeCoords([]byte(it.Polyline))
	require.NoError(t, err)
	require.Len(t, coords, 3)
	assert.InDelta(t, 28.5561, coords[0][0], 1e-5)
	assert.InDelta(t, 76.3922, coords[2][1], 1e-5)
}

func TestNewItineraryWithoutPath(t *testing.T) {
	fn := flightnetwork.New(flightnetwork.WithLogger(discard))
	_, _ = fn.AddAirport("PQR", "", 1, 1)
	_, _ = fn.AddAirport("XYZ", "", 2, 2)

	it, err := guidance.NewItinerary(fn, query(t, fn, "PQR", "XYZ"))
	require.NoError(t, err)

	assert.False(t, it.Found)
	assert.Nil(t, it.Codes())
	assert.Empty(t, it.Legs)

	var buf bytes.Buffer
	require.NoError(t, it.Render(&buf))
	assert.Equal(t, "No path exists from PQR to XYZ\n", buf.String())
}

func TestNewItineraryRejectsForeignResult(t *testing.T) {
	fn := flightnetwork.New(flightnetwork.WithLogger(discard))
	_, _ = fn.AddAirport("PQR", "", 1, 1)

	_, err := guidance.NewItinerary(fn, routingalgorithm.SPResult{Source: 0, Dest: 3})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestRender(t *testing.T) {
	fn := sampleNetwork(t)
	it, err := guidance.NewItinerary(fn, query(t, fn, "DEL", "COK"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, it.Render(&buf))

	want := strings.Join([]string{
		"Optimal route from DEL to COK:",
		"Path: DEL -> MAA -> COK",
		"Total Distance: 2260 units",
		"Total Duration: 210 minutes",
		"Total Cost: 12000 units",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())

	t.Run("source equals destination", func(t *testing.T) {
		it, err := guidance.NewItinerary(fn, query(t, fn, "BLR", "BLR"))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, it.Render(&buf))
		assert.Contains(t, buf.String(), "Path: BLR\n")
		assert.Contains(t, buf.String(), "Total Distance: 0 units\n")
	})

	t.Run("legs", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, it.RenderLegs(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "DEL -> MAA: 1760 units, 150 minutes, 8500 units, "))
		assert.True(t, strings.HasPrefix(lines[1], "MAA -> COK: 500 units, 60 minutes, 3500 units, "))
	})
}

func TestBearingTo(t *testing.T) {
	testCases := []struct {
		desc                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{desc: "north", lat1: 0, lon1: 0, lat2: 10, lon2: 0, want: 0},
		{desc: "east along the equator", lat1: 0, lon1: 0, lat2: 0, lon2: 10, want: 90},
		{desc: "south", lat1: 10, lon1: 0, lat2: 0, lon2: 0, want: 180},
		{desc: "west along the equator", lat1: 0, lon1: 10, lat2: 0, lon2: 0, want: 270},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.InDelta(t, tc.want, guidance.BearingTo(tc.lat1, tc.lon1, tc.lat2, tc.lon2), 1e-9)
		})
	}
}

func TestMidPoint(t *testing.T) {
	lat, lon := guidance.MidPoint(0, 0, 0, 10)
	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 5, lon, 1e-9)
}
