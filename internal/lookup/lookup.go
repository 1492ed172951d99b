// Package lookup builds outbound search links to approved auto-parts
// vendors. Only domains on a fixed allow-list may be navigated to; a site
// whose URL drifts off the list is rejected before any URL is produced.
package lookup

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"wrenchbill/internal/validate"
)

var (
	ErrDomainNotAllowed = errors.New("domain is not on the approved vendor list")
	ErrInvalidSiteURL   = errors.New("invalid site url")
)

// allowedDomains are the registered domains links may point at.
var allowedDomains = []string{
	"rockauto.com",
	"autozone.com",
	"advanceautoparts.com",
	"oreillyauto.com",
	"napaonline.com",
}

// Site is a configurable vendor search endpoint. URL is a prefix the
// encoded search term is appended to.
type Site struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// DefaultSites returns the stock vendor list. NAPA ships disabled.
func DefaultSites() []Site {
	return []Site{
		{Name: "RockAuto", URL: "https://www.rockauto.com/en/catalog/", Enabled: true},
		{Name: "AutoZone", URL: "https://www.autozone.com/parts/", Enabled: true},
		{Name: "Advance Auto", URL: "https://shop.advanceautoparts.com/find/", Enabled: true},
		{Name: "O'Reilly", URL: "https://www.oreillyauto.com/shop/b/", Enabled: true},
		{Name: "NAPA", URL: "https://www.napaonline.com/en/search?text=", Enabled: false},
	}
}

// SearchURL validates the site against the allow-list and returns the
// vendor URL with the sanitized, encoded search term appended.
func SearchURL(site Site, term string) (string, error) {
	parsed, err := url.Parse(site.URL)
	if err != nil || parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSiteURL, site.URL)
	}

	if !domainAllowed(parsed.Hostname()) {
		return "", fmt.Errorf("%w: %q", ErrDomainNotAllowed, parsed.Hostname())
	}

	return site.URL + escapeTerm(validate.Sanitize(term)), nil
}

// escapeTerm percent-encodes the search term. Vendor URLs append the term
// to a path prefix as often as a query string, so spaces become "%20"
// rather than the form-encoded "+".
func escapeTerm(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}

// domainAllowed accepts the registered domain itself and any of its
// subdomains, so www. and vendor shop. hosts both pass.
func domainAllowed(host string) bool {
	host = strings.ToLower(host)

	for _, domain := range allowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	return false
}
