package services

import "deal-checker/models"

// SelectAnalysis picks the language variant of the analysis payload:
// analysis[lang], then analysis["de"], then analysis itself as a flat object.
// Variants count only when they are non-empty objects. It returns nil only
// when the report carries no analysis at all.
func SelectAnalysis(analysis map[string]any, lang string) map[string]any {
	if analysis == nil {
		return nil
	}
	if v := objectAt(analysis, lang); v != nil {
		return v
	}
	if v := objectAt(analysis, "de"); v != nil {
		return v
	}
	return analysis
}

func objectAt(m map[string]any, key string) map[string]any {
	v, ok := m[key].(map[string]any)
	if !ok || len(v) == 0 {
		return nil
	}
	return v
}

// ToAnalysis converts a selected analysis object into its typed form. Missing
// or mistyped fields become zero values.
func ToAnalysis(obj map[string]any) *models.Analysis {
	if obj == nil {
		return nil
	}
	return &models.Analysis{
		MarketPriceEstimate:  obj["market_price_estimate"],
		Rating:               sanitizeText(looseString(obj["rating"])),
		Arguments:            stringList(obj["arguments"]),
		Script:               sanitizeText(looseString(obj["script"])),
		NegotiationPotential: obj["negotiation_potential"],
	}
}
