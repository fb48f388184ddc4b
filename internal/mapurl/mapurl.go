// Package mapurl builds Google Maps direction deep links for loop
// routes.
package mapurl

import (
	"strings"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

const baseURL = "https://www.google.com/maps/dir/?api=1"

// Encode serializes a loop into a Google Maps directions URL. Origin and
// destination are both the start coordinate, which forces the rendered
// route to close. Waypoints keep their traversal order, pipe-separated.
// Coordinates are emitted as plain "lat,lng" with no URL escaping; the
// characters involved need none, and the maps service tolerates
// unnormalized longitudes.
func Encode(origin models.Coordinate, waypoints []models.Coordinate, mode models.Mode) string {
	start := origin.String()

	points := make([]string, len(waypoints))
	for i, w := range waypoints {
		points[i] = w.String()
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("&origin=")
	b.WriteString(start)
	b.WriteString("&destination=")
	b.WriteString(start)
	b.WriteString("&waypoints=")
	b.WriteString(strings.Join(points, "|"))
	b.WriteString("&travelmode=")
	b.WriteString(string(mode))
	return b.String()
}
