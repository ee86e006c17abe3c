package models

// ReportMeta describes the advertisement itself.
type ReportMeta struct {
	Title string
	URL   string
	Image string
}

// VehicleData holds the advertised figures as received from the analysis
// service. Price and Km are left untyped; only the numeric normalizer may
// turn them into numbers.
type VehicleData struct {
	Price any
	Km    any
	EZ    string
	Power string
}

// RawAnalysisReport is the decoded response of the analysis service.
// Analysis is kept shape-ambiguous: it may be a flat analysis object, a map
// keyed by language code, or a mixture of both. A nil Analysis means the
// service returned none.
type RawAnalysisReport struct {
	Meta     ReportMeta
	Data     VehicleData
	Analysis map[string]any
}

// Analysis is one language variant of the valuation.
type Analysis struct {
	MarketPriceEstimate  any
	Rating               string
	Arguments            []string
	Script               string
	NegotiationPotential any
}

// RatingBucket is the display category of a freeform rating.
type RatingBucket string

const (
	RatingExpensive RatingBucket = "EXPENSIVE"
	RatingFair      RatingBucket = "FAIR"
	RatingGood      RatingBucket = "GOOD"
)

// TaggedArgument is a negotiation argument with its display glyph.
type TaggedArgument struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// NormalizedReport is derived from a RawAnalysisReport on every render and
// never mutated afterwards.
type NormalizedReport struct {
	CurrentPrice     int              `json:"current_price"`
	EstimatedPrice   int              `json:"estimated_price"`
	NegotiationDelta int              `json:"negotiation_delta"`
	DisplayEstimate  string           `json:"display_estimate"`
	RatingBucket     RatingBucket     `json:"rating_bucket"`
	TaggedArguments  []TaggedArgument `json:"tagged_arguments"`

	// Display extras.
	Lang           string `json:"lang"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	URL            string `json:"url,omitempty"`
	Km             int    `json:"km"`
	DisplayKm      string `json:"display_km"`
	FirstReg       string `json:"first_registration"`
	Power          string `json:"power"`
	RatingLabel    string `json:"rating_label"`
	Script         string `json:"script"`
	DisplayCurrent string `json:"display_current"`
	DisplayDelta   string `json:"display_delta"`
}
