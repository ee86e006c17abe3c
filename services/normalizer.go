package services

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxPlausiblePrice is the ceiling above which a parsed amount is treated as
// a parse failure. No advertised car costs more.
const MaxPlausiblePrice = 5_000_000

// digitRunRegexp finds the first group of three or more digits.
var digitRunRegexp = regexp.MustCompile(`[0-9]{3,}`)

// separatorReplacer drops thousands separators. Commas are never decimal
// marks in listing prices.
var separatorReplacer = strings.NewReplacer(".", "", ",", "")

// NormalizeAmount coerces an untrusted decoded JSON value into an integer in
// [0, MaxPlausiblePrice]. It never fails: every unusable input yields 0.
//
//	"25.000 €" → 25000
//	"1,234"    → 1234
//	25000      → 25000
//	nil, "n/a" → 0
func NormalizeAmount(v any) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return clampFloat(val)
	case float32:
		return clampFloat(float64(val))
	case int:
		return clampInt(int64(val))
	case int64:
		return clampInt(val)
	case int32:
		return clampInt(int64(val))
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return clampInt(i)
		}
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return clampFloat(f)
	case string:
		return parseAmountString(val)
	default:
		return 0
	}
}

func parseAmountString(s string) int {
	if s == "" {
		return 0
	}
	match := digitRunRegexp.FindString(separatorReplacer.Replace(s))
	if match == "" {
		return 0
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0
	}
	return clampInt(n)
}

func clampFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clampInt(int64(math.Trunc(math.Max(math.Min(f, MaxPlausiblePrice+1), -1))))
}

func clampInt(n int64) int {
	if n <= 0 || n > MaxPlausiblePrice {
		return 0
	}
	return int(n)
}
