package utils

import (
	"math"
)

// roundFloat rounds a float64 to a specified number of decimal places.
func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// CalculateStats calculates the average and sample standard deviation of a
// slice of values, rounded to 4 decimal places.
// Returns (average, standardDeviation); (0, 0) for an empty slice.
func CalculateStats(data []float64) (float64, float64) {
	n := len(data)
	if n == 0 {
		return 0.0, 0.0
	}

	sum := 0.0
	for _, val := range data {
		sum += val
	}
	average := sum / float64(n)

	if n < 2 { // Sample standard deviation is not defined for n < 2
		return roundFloat(average, 4), 0.0
	}

	varianceSum := 0.0
	for _, val := range data {
		varianceSum += math.Pow(val-average, 2)
	}
	stdDev := math.Sqrt(varianceSum / float64(n-1))

	return roundFloat(average, 4), roundFloat(stdDev, 4)
}

// TotalsOf converts assessment total scores to float64 for CalculateStats.
func TotalsOf(totals []int) []float64 {
	out := make([]float64, len(totals))
	for i, t := range totals {
		out[i] = float64(t)
	}
	return out
}
