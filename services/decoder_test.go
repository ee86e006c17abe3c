package services

import (
	"testing"
)

func TestDecodeReportFullPayload(t *testing.T) {
	body := []byte(`{
		"meta": {"title": "BMW 430i Coupé", "url": "https://suchen.mobile.de/x", "image": "https://img.example/1.jpg"},
		"data": {"price": 42470, "km": "85.000 km", "ez": "03/2019", "power": "185 kW (252 PS)"},
		"analysis": {"de": {"rating": "fair"}, "en": {"rating": "fair"}}
	}`)

	r, err := DecodeReport(body)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if r.Meta.Title != "BMW 430i Coupé" {
		t.Errorf("Title: got %q", r.Meta.Title)
	}
	if r.Meta.Image != "https://img.example/1.jpg" {
		t.Errorf("Image: got %q", r.Meta.Image)
	}
	if r.Data.Price != float64(42470) {
		t.Errorf("Price should stay raw, got %#v", r.Data.Price)
	}
	if r.Data.Km != "85.000 km" {
		t.Errorf("Km should stay raw, got %#v", r.Data.Km)
	}
	if r.Data.EZ != "03/2019" || r.Data.Power != "185 kW (252 PS)" {
		t.Errorf("EZ/Power: got %q / %q", r.Data.EZ, r.Data.Power)
	}
	if _, ok := r.Analysis["de"]; !ok {
		t.Error("Analysis should keep language variants")
	}
}

func TestDecodeReportDegradesShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"array root", `[1,2,3]`},
		{"null root", `null`},
		{"string sections", `{"meta": "x", "data": 5, "analysis": "none"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		r, err := DecodeReport([]byte(tt.body))
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if r.Analysis != nil {
			t.Errorf("%s: Analysis should be absent, got %#v", tt.name, r.Analysis)
		}
		if r.Meta.Title != "" || r.Data.Price != nil {
			t.Errorf("%s: expected zero values, got %+v", tt.name, r)
		}
	}
}

func TestDecodeReportRejectsInvalidJSON(t *testing.T) {
	if _, err := DecodeReport([]byte("<html>502 Bad Gateway</html>")); err == nil {
		t.Error("expected error for non-JSON body")
	}
}

func TestDecodeReportSanitizes(t *testing.T) {
	body := []byte(`{
		"meta": {"title": "<b>Golf</b> <script>alert(1)</script>& Co", "image": "javascript:alert(1)"},
		"data": {"ez": 2019}
	}`)
	r, err := DecodeReport(body)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if r.Meta.Title != "Golf & Co" {
		t.Errorf("Title: got %q, want %q", r.Meta.Title, "Golf & Co")
	}
	if r.Meta.Image != "" {
		t.Errorf("Image: got %q, want empty for non-http scheme", r.Meta.Image)
	}
	if r.Data.EZ != "2019" {
		t.Errorf("EZ: got %q, want %q", r.Data.EZ, "2019")
	}
}
