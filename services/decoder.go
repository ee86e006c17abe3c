package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"deal-checker/models"
)

var textPolicy = bluemonday.StrictPolicy()

// DecodeReport parses an analysis service response into a typed report.
// Only invalid JSON is an error; every shape anomaly inside valid JSON
// degrades to zero values.
func DecodeReport(body []byte) (*models.RawAnalysisReport, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	obj, _ := root.(map[string]any)
	meta, _ := obj["meta"].(map[string]any)
	data, _ := obj["data"].(map[string]any)
	analysis, _ := obj["analysis"].(map[string]any)

	return &models.RawAnalysisReport{
		Meta: models.ReportMeta{
			Title: sanitizeText(looseString(meta["title"])),
			URL:   safeURL(looseString(meta["url"])),
			Image: safeURL(looseString(meta["image"])),
		},
		Data: models.VehicleData{
			Price: data["price"],
			Km:    data["km"],
			EZ:    sanitizeText(looseString(data["ez"])),
			Power: sanitizeText(looseString(data["power"])),
		},
		Analysis: analysis,
	}, nil
}

// looseString accepts strings and numbers; everything else becomes "".
func looseString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// stringList keeps the string entries of a JSON array in order.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, sanitizeText(s))
		}
	}
	return out
}

// sanitizeText strips any markup from upstream free text.
func sanitizeText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}
