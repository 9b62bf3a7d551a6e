package payment

import "math"

// MinorUnits converts a decimal price to an integer amount of minor currency
// units (cents). Rounding to the nearest cent keeps binary float artifacts
// from shaving a unit: 19.99*100 is 1998.99... in float64 and must still
// charge 1999.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
