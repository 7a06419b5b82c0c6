// Package guidelines implements the statutory calculators: child support,
// spousal maintenance, and the cost/timeline estimator. Everything here is a
// pure function over value types; nothing is persisted.
package guidelines

import "math"

// Round2 rounds a monetary value to the cent.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
