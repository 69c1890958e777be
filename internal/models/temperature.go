package models

import "math"

// The primary API encodes temperatures as integer 1/32 °C steps.
const fixedPointScale = 32

// ToCelsius converts a fixed-point temperature value to float °C.
func ToCelsius(v int) float64 {
	return float64(v) / fixedPointScale
}

// ToFixedPoint converts float °C to the nearest fixed-point value.
func ToFixedPoint(c float64) int {
	return int(math.Round(c * fixedPointScale))
}
