package seo

import "strings"

// PermittedDomain is the single domain this assistant serves. It is a
// compiled-in constant, not configuration: the product is scoped to one
// site by design.
const PermittedDomain = "gsbg.in"

// HomepageURL is the canonical homepage address used for audits.
const HomepageURL = "https://www.gsbg.in"

// NormalizeDomain strips scheme, www. prefix and trailing slash, and
// lowercases, so user-supplied spellings of the same domain compare equal.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	return strings.TrimSuffix(d, "/")
}

// IsPermittedDomain reports whether domain names the permitted site.
func IsPermittedDomain(domain string) bool {
	return NormalizeDomain(domain) == PermittedDomain
}
