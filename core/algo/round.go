// Package algo holds the numeric primitives shared by the metrics calculator
// and the weight-goal safety analyzer.
package algo

import "math"

// RoundHalfUp rounds to the nearest integer, with halves going toward +Inf.
// This differs from math.Round only for negative halves (-2.5 -> -2).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundInt is RoundHalfUp converted to int.
func RoundInt(x float64) int {
	return int(RoundHalfUp(x))
}

// Round1 rounds to one decimal place using RoundHalfUp.
func Round1(x float64) float64 {
	return RoundHalfUp(x*10) / 10
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
