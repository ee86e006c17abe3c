package services

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"german thousands", "25.000 €", 25000},
		{"comma stripped", "1,234", 1234},
		{"plain number", float64(25000), 25000},
		{"fractional number truncated", 18999.99, 18999},
		{"int", 17000, 17000},
		{"json number", json.Number("42470"), 42470},
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"zero", float64(0), 0},
		{"two digits only", "50 €", 0},
		{"first run wins", "BMW 430 for 42.470 €", 430},
		{"no digits", "Preis auf Anfrage", 0},
		{"above ceiling string", "9.999.999", 0},
		{"above ceiling number", float64(7_000_000), 0},
		{"exactly ceiling", "5.000.000", 5_000_000},
		{"negative number", float64(-12000), 0},
		{"overflowing digits", "123456789012345678901234567890", 0},
		{"nan", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"bool", true, 0},
		{"object", map[string]any{"value": 1000}, 0},
		{"array", []any{"25.000"}, 0},
	}

	for _, tt := range tests {
		got := NormalizeAmount(tt.raw)
		if got != tt.want {
			t.Errorf("%s: NormalizeAmount(%#v) = %d; want %d", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeAmountAlwaysInRange(t *testing.T) {
	inputs := []any{
		"", ".", ",,,", "€", "12.34.56.78.90", "-25.000", "1e9", "0000000",
		float64(-1), float64(5_000_001), 1e300, -1e300, struct{}{}, []string{}, int64(math.MaxInt64),
	}
	for _, in := range inputs {
		got := NormalizeAmount(in)
		if got < 0 || got > MaxPlausiblePrice {
			t.Errorf("NormalizeAmount(%#v) = %d; out of [0, %d]", in, got, MaxPlausiblePrice)
		}
	}
}
