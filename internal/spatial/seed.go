package spatial

import "math"

// BearingFromSeed derives a bearing in [0,360) from an arbitrary seed
// string, typically a millisecond timestamp. The same seed always yields
// the same bearing, so a route is reproducible from its seed while a
// fresh timestamp gives a fresh direction.
//
// The seed is folded into a 32-bit hash (multiplier 31, wrapping at 32
// bits) and scrambled through sin(hash)*10000. The wraparound must stay
// explicit int32 arithmetic: widening it changes the bearing for long
// seeds. Not cryptographic, and deliberately so.
func BearingFromSeed(seed string) float64 {
	var hash int32
	for i := 0; i < len(seed); i++ {
		hash = hash*31 + int32(seed[i])
	}

	x := math.Sin(float64(hash)) * 10000
	frac := x - math.Floor(x)
	return frac * 360
}
