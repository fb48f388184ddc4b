package models

import "fmt"

// Unit is a user-facing distance unit.
type Unit string

// Mode is a travel mode supported by the maps deep link.
type Mode string

const (
	UnitKilometers Unit = "km"
	UnitMiles      Unit = "miles"
	UnitSteps      Unit = "steps"

	ModeWalking Mode = "walking"
	ModeCycling Mode = "cycling"
)

// ParseUnit validates a raw unit string.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKilometers, UnitMiles, UnitSteps:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// ParseMode validates a raw travel mode string. Empty defaults to walking.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeWalking, nil
	}
	switch Mode(s) {
	case ModeWalking, ModeCycling:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown travel mode %q", s)
}

// RouteRequest is a fully validated request for a loop route. The
// distance has already been normalized to kilometers.
type RouteRequest struct {
	Origin          Coordinate
	TotalDistanceKm float64
	Mode            Mode
	Seed            string
}

// LoopPlan is a closed triangular loop: origin, two waypoints in
// traversal order, and a destination equal to the origin.
type LoopPlan struct {
	Origin      Coordinate   `json:"origin"`
	Waypoints   []Coordinate `json:"waypoints"`
	Destination Coordinate   `json:"destination"`
}
