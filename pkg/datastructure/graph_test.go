package datastructure_test

import (
	"testing"

	"lintang/flightnav/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestRenderPath(t *testing.T) {
	t.Run("round trips through the polyline decoder", func(t *testing.T) {
		path := []datastructure.Airport{
			datastructure.NewAirport("DEL", "Delhi", 28.5561, 77.0994),
			datastructure.NewAirport("MAA", "Chennai", 12.9941, 80.1709),
			datastructure.NewAirport("COK", "Cochin", 10.152, 76.3922),
		}

		encoded := datastructure.RenderPath(path)
		coords, rest, err := polyline.DecodeCoords([]byte(encoded))
		require.NoError(t, err)
		assert.Empty(t, rest)
		require.Len(t, coords, len(path))
		for i, c := range coords {
			assert.InDelta(t, path[i].Lat, c[0], 1e-5)
			assert.InDelta(t, path[i].Lon, c[1], 1e-5)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, "", datastructure.RenderPath(nil))
	})
}

func TestWeights(t *testing.T) {
	a := datastructure.Weights{Distance: 10, Duration: 5, Cost: 1}
	b := datastructure.Weights{Distance: 20, Duration: 10, Cost: 2}

	assert.Equal(t, datastructure.Weights{Distance: 30, Duration: 15, Cost: 3}, a.Add(b))
	assert.Equal(t, a, b.Sub(a))
}
