package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlightsMatchesOriginOrDestination(t *testing.T) {
	byFrom := SearchFlights("mumbai", "nowhere")
	require.Len(t, byFrom, 1)
	assert.Equal(t, "Chaos Airways", byFrom[0].Airline)

	byTo := SearchFlights("nowhere", "singapore")
	require.Len(t, byTo, 1)
	assert.Equal(t, "Surprise Sky", byTo[0].Airline)
}

func TestSearchFlightsSubstringAndCase(t *testing.T) {
	got := SearchFlights("  DEL  ", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Delhi", got[0].From)
}

func TestSearchFlightsNoMatch(t *testing.T) {
	got := SearchFlights("atlantis", "el dorado")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFlightByID(t *testing.T) {
	f := FlightByID("2")
	require.NotNil(t, f)
	assert.Equal(t, "Mystery Express", f.Airline)

	assert.Nil(t, FlightByID("999"))
}

func TestMoviesByGenre(t *testing.T) {
	horror := MoviesByGenre("Horror")
	require.Len(t, horror, 2)
	for _, m := range horror {
		assert.Equal(t, "Horror", m.Genre)
	}

	fallback := MoviesByGenre("documentary")
	require.NotEmpty(t, fallback)
	assert.Equal(t, "Comedy", fallback[0].Genre)
}
