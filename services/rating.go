package services

import (
	"strings"

	"deal-checker/models"
)

// ClassifyRating buckets a freeform rating in German or English. The keyword
// test stands in for a rating code the analysis service does not provide.
func ClassifyRating(rating string) models.RatingBucket {
	r := strings.ToLower(rating)
	switch {
	case strings.Contains(r, "teuer"), strings.Contains(r, "expensive"):
		return models.RatingExpensive
	case strings.Contains(r, "fair"):
		return models.RatingFair
	default:
		return models.RatingGood
	}
}

// RatingLabel is the text shown on the rating badge.
func RatingLabel(rating string) string {
	if strings.TrimSpace(rating) == "" {
		return "Info"
	}
	return rating
}
