package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("40.0, -73.0")
	require.NoError(t, err)
	require.Equal(t, Coordinate{Latitude: 40, Longitude: -73}, c)

	c, err = ParseCoordinate("51.5074,-0.1278")
	require.NoError(t, err)
	require.InDelta(t, 51.5074, c.Latitude, 1e-9)
	require.InDelta(t, -0.1278, c.Longitude, 1e-9)
}

func TestParseCoordinateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "40", "40;-73", "forty, minus", "40,-73,12", "91, 0", "0, 181"} {
		_, err := ParseCoordinate(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestCoordinateStringMinimalDigits(t *testing.T) {
	require.Equal(t, "40,-73", Coordinate{Latitude: 40, Longitude: -73}.String())
	require.Equal(t, "40.5,-73.25", Coordinate{Latitude: 40.5, Longitude: -73.25}.String())
}
