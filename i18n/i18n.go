// Package i18n holds the UI translation table and locale-aware number
// formatting.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Fallback is used for every unknown language code.
const Fallback = "de"

// Supported lists the languages present in the translation table.
var Supported = []string{"de", "en"}

//go:embed translations.yaml
var rawTable []byte

// Strings is the UI string set of one language.
type Strings struct {
	Title             string   `yaml:"title"`
	Subtitle          string   `yaml:"subtitle"`
	Placeholder       string   `yaml:"placeholder"`
	Button            string   `yaml:"button"`
	Loading           string   `yaml:"loading"`
	ResultTitle       string   `yaml:"result_title"`
	MarketValue       string   `yaml:"market_value"`
	ActualPrice       string   `yaml:"actual_price"`
	Savings           string   `yaml:"savings"`
	Ammo              string   `yaml:"ammo"`
	Script            string   `yaml:"script"`
	Footer            string   `yaml:"footer"`
	Features          []string `yaml:"features"`
	NoImage           string   `yaml:"no_image"`
	Vehicle           string   `yaml:"vehicle"`
	FirstRegistration string   `yaml:"first_registration"`
	InvalidDomain     string   `yaml:"invalid_domain"`
	AnalysisFailed    string   `yaml:"analysis_failed"`
	NoAnalysis        string   `yaml:"no_analysis"`
}

var (
	table    map[string]*Strings
	printers = map[string]*message.Printer{}
	tags     = map[string]language.Tag{
		"de": language.German,
		"en": language.English,
	}
	matcher = language.NewMatcher([]language.Tag{language.German, language.English})
)

func init() {
	t, err := parseTable(rawTable)
	if err != nil {
		panic(err)
	}
	table = t
	for code, tag := range tags {
		printers[code] = message.NewPrinter(tag)
	}
}

func parseTable(data []byte) (map[string]*Strings, error) {
	var t map[string]*Strings
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("i18n: parse translations: %w", err)
	}
	if _, ok := t[Fallback]; !ok {
		return nil, fmt.Errorf("i18n: translations lack fallback language %q", Fallback)
	}
	return t, nil
}

// Normalize maps any code to a supported one.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := table[lang]; ok {
		return lang
	}
	return Fallback
}

// IsSupported reports whether lang has its own string set.
func IsSupported(lang string) bool {
	_, ok := table[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// Lookup returns the string set for lang, falling back to German.
func Lookup(lang string) *Strings {
	return table[Normalize(lang)]
}

// Negotiate picks a supported language from an Accept-Language header.
func Negotiate(acceptLanguage, fallback string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Normalize(fallback)
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Normalize(fallback)
	}
	return Supported[idx]
}

// FormatInt renders n with the thousands grouping of lang.
func FormatInt(lang string, n int) string {
	return printers[Normalize(lang)].Sprintf("%d", n)
}
