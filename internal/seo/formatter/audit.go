// Package formatter renders specialist findings into Markdown report
// blocks. Every function is pure: for fixed inputs the output text is
// identical on every call. Timestamps are injected by the caller.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"seo-management-agent/internal/seo"
)

// DateTimeFormat is the human-readable stamp used in report headers.
const DateTimeFormat = "2006-01-02 15:04"

// TechnicalAudit renders the full technical audit report.
func TechnicalAudit(domain string, c seo.AuditChecks, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✅ **Technical SEO Audit Complete**\n\n")
	fmt.Fprintf(&b, "**Domain:** %s\n", domain)
	fmt.Fprintf(&b, "**Audit Date:** %s\n", now.Format(DateTimeFormat))
	fmt.Fprintf(&b, "**Overall Score:** %d/100\n\n", c.Score())

	b.WriteString("### Technical Checks\n\n")
	fmt.Fprintf(&b, "%s **HTTPS/SSL:** %s\n", mark(c.HasSSL), pick(c.HasSSL, "Enabled", "Not enabled - CRITICAL ISSUE"))
	fmt.Fprintf(&b, "%s **robots.txt:** %s\n", mark(c.HasRobotsTxt), pick(c.HasRobotsTxt, "Found", "Missing"))
	fmt.Fprintf(&b, "%s **sitemap.xml:** %s\n", mark(c.HasSitemap), pick(c.HasSitemap, "Found", "Missing"))
	fmt.Fprintf(&b, "%s **Title Tag:** %s\n", mark(c.HasTitle), pick(c.HasTitle, "Present", "Missing"))
	fmt.Fprintf(&b, "%s **Meta Description:** %s\n", mark(c.HasMetaDescription), pick(c.HasMetaDescription, "Present", "Missing"))
	fmt.Fprintf(&b, "%s **H1 Tags:** %d found\n\n", mark(c.H1Count >= 1), c.H1Count)

	b.WriteString("### Priority Issues\n\n")
	issues := auditPriorityIssues(c)
	if len(issues) == 0 {
		b.WriteString("✅ No critical issues found!\n\n")
	}
	for _, issue := range issues {
		b.WriteString(issue)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, `### Recommendations

1. **Improve Score:** Current score is %d/100. Focus on fixing priority issues first.
2. **Mobile Optimization:** Test mobile responsiveness using Google's Mobile-Friendly Test.
3. **Page Speed:** Check loading speed with Google PageSpeed Insights.
4. **Content:** Ensure all pages have unique titles and meta descriptions.
`, c.Score())

	return b.String()
}

// auditPriorityIssues orders remediation items by severity: missing
// HTTPS first, then robots.txt/sitemap, then the title tag.
func auditPriorityIssues(c seo.AuditChecks) []string {
	var issues []string
	if !c.HasSSL {
		issues = append(issues, "🔴 **CRITICAL:** Enable HTTPS/SSL for security and SEO")
	}
	if !c.HasRobotsTxt {
		issues = append(issues, "🟠 **HIGH:** Create robots.txt to guide search engine crawlers")
	}
	if !c.HasSitemap {
		issues = append(issues, "🟠 **HIGH:** Create XML sitemap to help search engines index your site")
	}
	if !c.HasTitle {
		issues = append(issues, "🔴 **CRITICAL:** Add title tag to homepage")
	}
	return issues
}

// AuditRejection renders the refusal shown when the requested domain is
// not the permitted one. No fetch has happened at this point.
func AuditRejection(domain string) string {
	return fmt.Sprintf("❌ **Technical Audit Failed**\n\nThis assistant only audits %s. Requested domain: %s", seo.PermittedDomain, domain)
}

// AuditFailure renders the report returned when the site could not be
// reached or returned an unexpected status.
func AuditFailure(domain, reason string) string {
	return fmt.Sprintf("❌ **Technical Audit Failed**\n\nUnable to access %s: %s", domain, reason)
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
