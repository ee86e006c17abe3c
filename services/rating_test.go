package services

import (
	"testing"

	"deal-checker/models"
)

func TestClassifyRating(t *testing.T) {
	tests := []struct {
		raw  string
		want models.RatingBucket
	}{
		{"ZU TEUER", models.RatingExpensive},
		{"expensive", models.RatingExpensive},
		{"Expensive!!", models.RatingExpensive},
		{"teuer/fair/gut", models.RatingExpensive},
		{"Fair", models.RatingFair},
		{"fairer Preis", models.RatingFair},
		{"gut", models.RatingGood},
		{"Great deal", models.RatingGood},
		{"", models.RatingGood},
	}
	for _, tt := range tests {
		if got := ClassifyRating(tt.raw); got != tt.want {
			t.Errorf("ClassifyRating(%q) = %s; want %s", tt.raw, got, tt.want)
		}
	}
}

func TestRatingLabel(t *testing.T) {
	if got := RatingLabel("  "); got != "Info" {
		t.Errorf("RatingLabel(blank) = %q; want Info", got)
	}
	if got := RatingLabel("fair"); got != "fair" {
		t.Errorf("RatingLabel(fair) = %q; want fair", got)
	}
}
