package main

import (
	"bytes"
	"testing"

	"lintang/flightnav/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRouteCmd(t *testing.T) {
	t.Run("sample query", func(t *testing.T) {
		out, _, err := run(t, "route", "--from", "DEL", "--to", "COK")
		require.NoError(t, err)
		assert.Equal(t, "Optimal route from DEL to COK:\n"+
			"Path: DEL -> MAA -> COK\n"+
			"Total Distance: 2260 units\n"+
			"Total Duration: 210 minutes\n"+
			"Total Cost: 12000 units\n", out)
	})

	t.Run("codes are case insensitive", func(t *testing.T) {
		out, _, err := run(t, "route", "--from", "del", "--to", "cok", "--legs")
		require.NoError(t, err)
		assert.Contains(t, out, "Path: DEL -> MAA -> COK\n")
		assert.Contains(t, out, "DEL -> MAA: 1760 units, 150 minutes, 8500 units, ")
	})

	t.Run("cheapest route", func(t *testing.T) {
		out, _, err := run(t, "route", "--from", "DEL", "--to", "COK", "--criterion", "cost")
		require.NoError(t, err)
		assert.Contains(t, out, "Total Cost: 12000 units\n")
	})

	t.Run("unknown airport", func(t *testing.T) {
		_, _, err := run(t, "route", "--from", "DEL", "--to", "XXX")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("airport dropped by a small capacity", func(t *testing.T) {
		_, stderr, err := run(t, "route", "--from", "DEL", "--to", "COK", "--capacity", "3")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, stderr, "maximum number of airports reached")
	})

	t.Run("invalid criterion", func(t *testing.T) {
		_, _, err := run(t, "route", "--from", "DEL", "--to", "COK", "--criterion", "speed")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestMatrixCmd(t *testing.T) {
	out, _, err := run(t, "matrix", "--from", "DEL,BOM", "--to", "COK,HYD", "--workers", "2")
	require.NoError(t, err)

	for _, want := range []string{"distance", "DEL", "BOM", "COK", "HYD", "2260"} {
		assert.Contains(t, out, want)
	}
	// BOM -> HYD is a direct route of 620
	assert.Contains(t, out, "620")
}

func TestNearestCmd(t *testing.T) {
	out, _, err := run(t, "nearest", "--lat", "12.9716", "--lon", "77.5946")
	require.NoError(t, err)
	assert.Equal(t, "Nearest airport: BLR (Kempegowda International Airport)\n", out)
}

func TestAirportsCmd(t *testing.T) {
	out, _, err := run(t, "airports")
	require.NoError(t, err)
	for _, code := range []string{"DEL", "BOM", "MAA", "BLR", "HYD", "CCU", "COK"} {
		assert.Contains(t, out, code)
	}
	assert.Contains(t, out, "Cochin International Airport")
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := run(t, "route", "--from", "DEL", "--to", "COK", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `flightnav_shortestpath_query_count{reached="true"} 1`)
	assert.Contains(t, out, "flightnav_heap_extract_total")
}

func TestProgressFlag(t *testing.T) {
	_, stderr, err := run(t, "airports", "--progress")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loading flight network")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "airports", "--log-level", "verbose")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
