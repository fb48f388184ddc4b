package mapurl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

func TestEncodeClosedLoop(t *testing.T) {
	origin := models.Coordinate{Latitude: 40.0, Longitude: -73.0}
	w1 := models.Coordinate{Latitude: 40.01, Longitude: -73.02}
	w2 := models.Coordinate{Latitude: 39.99, Longitude: -73.03}

	url := Encode(origin, []models.Coordinate{w1, w2}, models.ModeWalking)

	require.True(t, strings.HasPrefix(url, "https://www.google.com/maps/dir/?api=1"))
	require.Contains(t, url, "&origin=40,-73&destination=40,-73&")
	require.Contains(t, url, "&waypoints=40.01,-73.02|39.99,-73.03&")
	require.True(t, strings.HasSuffix(url, "&travelmode=walking"))
}

func TestEncodeOriginEqualsDestination(t *testing.T) {
	origin := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	url := Encode(origin, nil, models.ModeCycling)

	want := origin.String()
	require.Contains(t, url, "&origin="+want+"&destination="+want+"&")
	require.True(t, strings.HasSuffix(url, "&travelmode=cycling"))
}

func TestEncodeWaypointOrderPreserved(t *testing.T) {
	origin := models.Coordinate{Latitude: 1, Longitude: 2}
	a := models.Coordinate{Latitude: 3, Longitude: 4}
	b := models.Coordinate{Latitude: 5, Longitude: 6}

	url := Encode(origin, []models.Coordinate{a, b}, models.ModeWalking)
	require.Contains(t, url, "&waypoints=3,4|5,6&")

	reversed := Encode(origin, []models.Coordinate{b, a}, models.ModeWalking)
	require.Contains(t, reversed, "&waypoints=5,6|3,4&")
}

func TestEncodeToleratesUnnormalizedLongitude(t *testing.T) {
	origin := models.Coordinate{Latitude: 0, Longitude: 179.9}
	w := models.Coordinate{Latitude: 0, Longitude: 180.8}

	url := Encode(origin, []models.Coordinate{w}, models.ModeWalking)
	require.Contains(t, url, "&waypoints=0,180.8&")
}
