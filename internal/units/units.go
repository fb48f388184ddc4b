// Package units converts user-facing distances into kilometers, the
// canonical unit everything downstream works in.
package units

import (
	"fmt"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

const (
	// KilometersPerMile is the exact international mile, truncated the
	// way the frontend truncates it.
	KilometersPerMile = 1.60934

	// StrideHeightRatio estimates stride length as a fraction of body
	// height. 0.415 is the commonly used average for adults.
	StrideHeightRatio = 0.415

	// DefaultHeightCm is assumed when the user gave no usable height.
	DefaultHeightCm = 170

	// minHeightCm guards against heights that are clearly not a body
	// height in centimeters (e.g. meters or empty input).
	minHeightCm = 50
)

// ToKilometers converts value in the given unit to kilometers. For the
// steps unit the user's height drives stride length; a missing or
// implausible height silently falls back to DefaultHeightCm rather than
// failing the request.
func ToKilometers(value float64, unit models.Unit, heightCm float64) (float64, error) {
	switch unit {
	case models.UnitKilometers:
		return value, nil
	case models.UnitMiles:
		return value * KilometersPerMile, nil
	case models.UnitSteps:
		h := heightCm
		if h < minHeightCm {
			h = DefaultHeightCm
		}
		strideCm := h * StrideHeightRatio
		strideKm := strideCm / 100000
		return value * strideKm, nil
	}
	return 0, fmt.Errorf("unknown unit %q", unit)
}
