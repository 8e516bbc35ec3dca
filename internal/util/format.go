package util

import (
	"math"
	"strconv"
)

// FormatLiters renders a liter quantity rounded to two decimals with
// trailing zeros trimmed, matching how the web console displays volumes.
func FormatLiters(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatLitersString parses a decimal string, such as a customer balance,
// and formats it like FormatLiters. Unparseable input renders as "0".
func FormatLitersString(value string) string {
	if value == "" {
		return "0"
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "0"
	}
	return FormatLiters(f)
}
