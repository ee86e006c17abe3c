package services

import "deal-checker/i18n"

// MinPlausibleEstimate is the floor below which an estimate is discarded.
const MinPlausibleEstimate = 100

// Placeholder is shown instead of an estimate while no report is held.
const Placeholder = "---"

// PriceDelta is the outcome of comparing the asking price to the estimate.
type PriceDelta struct {
	Current   int
	Estimated int
	Delta     int
}

// ComputeDelta normalizes both raw amounts and derives the negotiation delta.
// An implausible estimate collapses onto the current price so the delta
// becomes zero instead of surfacing a broken valuation.
func ComputeDelta(rawPrice, rawEstimate any) PriceDelta {
	current := NormalizeAmount(rawPrice)
	estimated := NormalizeAmount(rawEstimate)

	if estimated < MinPlausibleEstimate || estimated > MaxPlausiblePrice {
		estimated = current
	}

	return PriceDelta{
		Current:   current,
		Estimated: estimated,
		Delta:     current - estimated,
	}
}

// FormatDelta renders the delta as negotiation potential. A positive delta
// (asking above estimate) is money the buyer can save and gets a leading "-";
// anything else gets "+".
func FormatDelta(lang string, delta int) string {
	sign := "+"
	if delta > 0 {
		sign = "-"
	}
	if delta < 0 {
		delta = -delta
	}
	return sign + i18n.FormatInt(lang, delta) + " €"
}

// FormatEuro renders an amount as "25.000 €".
func FormatEuro(lang string, amount int) string {
	return i18n.FormatInt(lang, amount) + " €"
}
