package ir

import (
	"math"
	"strconv"
)

// FormatNumber renders a float without trailing zeros ("50", "70.76").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RoundTo rounds f to the given number of decimal places.
func RoundTo(f float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}
