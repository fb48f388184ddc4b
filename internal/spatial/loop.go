package spatial

import (
	"fmt"
	"math"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

// sideDivisor converts a requested total distance into the straight-line
// side length of the triangle. A pure equilateral triangle would use 3.0,
// but real roads are not straight and the maps service shortcuts a naive
// triangle, so the loop has to be planned short of the target. 4.0 is an
// empirically tuned overshoot compensation; re-tune it, don't "correct"
// it back to 3.0.
const sideDivisor = 4.0

// PlanLoop builds a closed triangular loop of approximately totalKm
// starting and ending at origin. The two waypoints are returned in
// traversal order: origin -> w1 -> w2 -> origin. Closure back to the
// origin is approximate on a sphere, not exact.
func PlanLoop(origin models.Coordinate, totalKm float64, seed string) (models.LoopPlan, error) {
	if totalKm <= 0 {
		return models.LoopPlan{}, fmt.Errorf("total distance must be positive, got %v", totalKm)
	}

	side := totalKm / sideDivisor

	// Walking a triangle means turning 120 degrees at each vertex.
	bearing1 := BearingFromSeed(seed)
	bearing2 := math.Mod(bearing1+120, 360)

	w1 := Destination(origin, side, bearing1)
	w2 := Destination(w1, side, bearing2)

	return models.LoopPlan{
		Origin:      origin,
		Waypoints:   []models.Coordinate{w1, w2},
		Destination: origin,
	}, nil
}
