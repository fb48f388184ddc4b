package service

import (
	"fmt"

	"github.com/dailywalker/walkloop-backend-go/internal/mapurl"
	"github.com/dailywalker/walkloop-backend-go/internal/models"
	"github.com/dailywalker/walkloop-backend-go/internal/spatial"
	"github.com/dailywalker/walkloop-backend-go/internal/units"
)

// GenerateInput is the raw, caller-supplied input for a loop route.
type GenerateInput struct {
	StartLocation string
	Distance      float64
	Unit          string
	HeightCm      float64
	Mode          string
	Seed          string
}

// GeneratedRoute is the planned loop plus its rendered maps URL.
type GeneratedRoute struct {
	Plan       models.LoopPlan `json:"plan"`
	DistanceKm float64         `json:"distance_km"`
	Mode       models.Mode     `json:"mode"`
	Seed       string          `json:"seed"`
	MapsURL    string          `json:"maps_url"`
}

// RouteService turns raw user input into a closed loop route.
type RouteService struct{}

// NewRouteService creates a new route service
func NewRouteService() *RouteService {
	return &RouteService{}
}

// Generate validates the input, normalizes the distance to kilometers,
// plans the triangular loop and encodes the maps deep link. Geometry
// itself has no failure path; every error here is an input error.
func (s *RouteService) Generate(in GenerateInput) (*GeneratedRoute, error) {
	origin, err := models.ParseCoordinate(in.StartLocation)
	if err != nil {
		return nil, fmt.Errorf("invalid start location: %w", err)
	}

	if in.Distance <= 0 {
		return nil, fmt.Errorf("distance must be positive, got %v", in.Distance)
	}

	unit, err := models.ParseUnit(in.Unit)
	if err != nil {
		return nil, err
	}
	mode, err := models.ParseMode(in.Mode)
	if err != nil {
		return nil, err
	}
	if in.Seed == "" {
		return nil, fmt.Errorf("seed must not be empty")
	}

	distKm, err := units.ToKilometers(in.Distance, unit, in.HeightCm)
	if err != nil {
		return nil, err
	}

	plan, err := spatial.PlanLoop(origin, distKm, in.Seed)
	if err != nil {
		return nil, err
	}

	return &GeneratedRoute{
		Plan:       plan,
		DistanceKm: distKm,
		Mode:       mode,
		Seed:       in.Seed,
		MapsURL:    mapurl.Encode(plan.Origin, plan.Waypoints, mode),
	}, nil
}
