package models

import "time"

// Scan is the archived record of one completed check.
type Scan struct {
	URL            string
	Title          string
	ImageURL       string
	Price          int
	Km             int
	EZ             string
	Rating         string
	MarketEstimate int
	Potential      int
	Lang           string
	CreatedAt      time.Time
}

// NewScan flattens a normalized report into an archive record.
func NewScan(listingURL string, r *NormalizedReport) *Scan {
	return &Scan{
		URL:            listingURL,
		Title:          r.Title,
		ImageURL:       r.Image,
		Price:          r.CurrentPrice,
		Km:             r.Km,
		EZ:             r.FirstReg,
		Rating:         r.RatingLabel,
		MarketEstimate: r.EstimatedPrice,
		Potential:      r.NegotiationDelta,
		Lang:           r.Lang,
		CreatedAt:      time.Now(),
	}
}
