package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

// Constants
const (
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// Destination calculates the point reached by traveling distanceKm along
// the given bearing (degrees, 0 = north, clockwise) from origin, on a
// spherical Earth.
//
// The resulting longitude is intentionally NOT normalized into
// [-180,180]; the maps service re-normalizes, and keeping the raw value
// preserves the output of the reference implementation.
func Destination(origin models.Coordinate, distanceKm, bearingDeg float64) models.Coordinate {
	p := s2.LatLngFromDegrees(origin.Latitude, origin.Longitude)
	bearingRad := bearingDeg * math.Pi / 180
	angularDistance := distanceKm / EarthRadiusKm

	latRad := p.Lat.Radians()
	lonRad := p.Lng.Radians()

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angularDistance) +
		math.Cos(latRad)*math.Sin(angularDistance)*math.Cos(bearingRad))

	lon2 := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angularDistance)*math.Cos(latRad),
		math.Cos(angularDistance)-math.Sin(latRad)*math.Sin(lat2))

	return models.Coordinate{
		Latitude:  lat2 * 180 / math.Pi,
		Longitude: lon2 * 180 / math.Pi,
	}
}

// Haversine calculates the great-circle distance between two points in
// kilometers.
func Haversine(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
