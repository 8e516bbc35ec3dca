package util

import (
	"math"
	"testing"
)

func TestFormatLiters(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5.5, "5.5"},
		{2.346, "2.35"},
		{3.10, "3.1"},
		{1000, "1000"},
		{0.1, "0.1"},
		{math.NaN(), "0"},
	}

	for _, tc := range cases {
		if got := FormatLiters(tc.in); got != tc.want {
			t.Errorf("FormatLiters(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatLitersString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"12.50", "12.5"},
		{"abc", "0"},
		{"0.10", "0.1"},
	}

	for _, tc := range cases {
		if got := FormatLitersString(tc.in); got != tc.want {
			t.Errorf("FormatLitersString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
