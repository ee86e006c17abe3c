package i18n

import "testing"

func TestLookupFallsBackToGerman(t *testing.T) {
	if got := Lookup("fr").Title; got != "Deal Anwalt" {
		t.Errorf("Lookup(fr).Title = %q; want German fallback", got)
	}
	if got := Lookup("EN").Title; got != "Deal Lawyer" {
		t.Errorf("Lookup(EN).Title = %q; want %q", got, "Deal Lawyer")
	}
}

func TestEveryLanguageIsComplete(t *testing.T) {
	for _, lang := range Supported {
		s := Lookup(lang)
		if s.InvalidDomain == "" || s.AnalysisFailed == "" || s.Savings == "" {
			t.Errorf("%s: missing required strings", lang)
		}
		if len(s.Features) != 3 {
			t.Errorf("%s: features: got %d, want 3", lang, len(s.Features))
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		lang string
		n    int
		want string
	}{
		{"de", 3000, "3.000"},
		{"en", 3000, "3,000"},
		{"de", 1234567, "1.234.567"},
		{"de", 42, "42"},
		{"xx", 25000, "25.000"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.lang, tt.n); got != tt.want {
			t.Errorf("FormatInt(%q, %d) = %q; want %q", tt.lang, tt.n, got, tt.want)
		}
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header   string
		fallback string
		want     string
	}{
		{"en-US,en;q=0.9", "de", "en"},
		{"de-AT", "en", "de"},
		{"ja", "en", "en"},
		{"", "de", "de"},
		{"fr-FR,en;q=0.5", "de", "en"},
	}
	for _, tt := range tests {
		if got := Negotiate(tt.header, tt.fallback); got != tt.want {
			t.Errorf("Negotiate(%q, %q) = %q; want %q", tt.header, tt.fallback, got, tt.want)
		}
	}
}

func TestParseTableRequiresFallback(t *testing.T) {
	if _, err := parseTable([]byte("en:\n  title: x\n")); err == nil {
		t.Error("expected error for table without German strings")
	}
}
