package services

import (
	"errors"
	"strings"
)

// ErrInvalidDomain is returned for listing references outside the allowlist.
var ErrInvalidDomain = errors.New("listing is not from a supported marketplace")

// SupportedMarketplaces is the allowlist of domain fragments. Matching is a
// case-insensitive substring test so path and query variations pass.
var SupportedMarketplaces = []string{"mobile.de", "autoscout24", "kleinanzeigen", "ebay"}

// ValidateListing gates a submitted listing reference. It reports whether a
// request should be issued: an empty reference is valid but submits nothing.
func ValidateListing(ref string) (submit bool, err error) {
	if ref == "" {
		return false, nil
	}
	lower := strings.ToLower(ref)
	for _, domain := range SupportedMarketplaces {
		if strings.Contains(lower, domain) {
			return true, nil
		}
	}
	return false, ErrInvalidDomain
}
