package formatter

import (
	"fmt"
	"strings"
	"time"

	"seo-management-agent/internal/seo"
)

// ContentAnalysis renders the on-page content analysis report.
func ContentAnalysis(url string, c seo.ContentChecks, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📝 **Content Analysis Complete**\n\n")
	fmt.Fprintf(&b, "**URL:** %s\n", url)
	fmt.Fprintf(&b, "**Analysis Date:** %s\n", now.Format(DateTimeFormat))
	fmt.Fprintf(&b, "**Content Score:** %d/100\n\n", c.Score())

	b.WriteString("### SEO Elements\n\n")

	fmt.Fprintf(&b, "**Title Tag:** %s\n", pick(c.HasTitle, c.TitleText, "❌ Missing"))
	fmt.Fprintf(&b, "%s Length: %d chars (Optimal: %d-%d)\n\n",
		warnMark(c.TitleLengthOK()), len(c.TitleText), seo.TitleLengthMin, seo.TitleLengthMax)

	fmt.Fprintf(&b, "**Meta Description:** %s\n", pick(c.HasMetaDescription, c.MetaDescription, "❌ Missing"))
	fmt.Fprintf(&b, "%s Length: %d chars (Optimal: %d-%d)\n\n",
		warnMark(c.MetaLengthOK()), len(c.MetaDescription), seo.MetaLengthMin, seo.MetaLengthMax)

	fmt.Fprintf(&b, "**H1 Tags:** %d found %s\n", len(c.H1Texts),
		pick(len(c.H1Texts) == 1, "✅", "⚠️ Should have exactly 1"))
	for i, h1 := range c.H1Texts {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s\n", h1)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "**Word Count:** %d words %s\n\n", c.WordCount,
		pick(c.WordCount >= seo.WordCountFloor, "✅", "⚠️ Minimum 300 words recommended"))

	b.WriteString("### Recommendations\n\n")
	for _, rec := range contentRecommendations(c) {
		b.WriteString(rec)
		b.WriteString("\n\n")
	}

	b.WriteString(`### Next Steps

1. **Implement Fixes:** Address priority issues first (marked with 🔴)
2. **Add Keywords:** Incorporate target keywords naturally in title, headings, and content
3. **Improve Readability:** Use short paragraphs, bullet points, and subheadings
4. **Add Internal Links:** Link to 3-5 related pages on your site
5. **Add Media:** Include relevant images, videos, or infographics
`)

	return b.String()
}

// contentRecommendations lists remediation items keyed to the failed
// checks, in fixed order. A fully clean page gets a single all-clear line.
func contentRecommendations(c seo.ContentChecks) []string {
	var recs []string

	if !c.HasTitle {
		recs = append(recs, "🔴 **CRITICAL:** Add a title tag to this page")
	} else if !c.TitleLengthOK() {
		recs = append(recs, fmt.Sprintf("🟠 **Title Optimization:** Current length is %d chars. Aim for %d-%d characters.",
			len(c.TitleText), seo.TitleLengthMin, seo.TitleLengthMax))
	}

	if !c.HasMetaDescription {
		recs = append(recs, "🔴 **CRITICAL:** Add a meta description")
	} else if !c.MetaLengthOK() {
		recs = append(recs, fmt.Sprintf("🟠 **Meta Description:** Current length is %d chars. Aim for %d-%d characters.",
			len(c.MetaDescription), seo.MetaLengthMin, seo.MetaLengthMax))
	}

	switch {
	case len(c.H1Texts) == 0:
		recs = append(recs, "🔴 **CRITICAL:** Add an H1 tag to define the page topic")
	case len(c.H1Texts) > 1:
		recs = append(recs, fmt.Sprintf("🟡 **H1 Structure:** You have %d H1 tags. Use only ONE H1 per page.", len(c.H1Texts)))
	}

	if c.WordCount < seo.WordCountFloor {
		recs = append(recs, fmt.Sprintf("🟠 **Content Length:** Add more content. Current: %d words, Minimum: %d words",
			c.WordCount, seo.WordCountFloor))
	}

	if len(recs) == 0 {
		recs = append(recs, "✅ No critical issues found! This page follows SEO best practices.")
	}
	return recs
}

// ContentRejection renders the refusal for a malformed URL. No fetch has
// happened at this point.
func ContentRejection(url, reason string) string {
	return fmt.Sprintf("❌ **Content Analysis Failed**\n\nError: %s (URL: %s)", reason, url)
}

// ContentFailure renders the report returned when the page could not be
// fetched or returned a non-200 status.
func ContentFailure(url, reason string) string {
	return fmt.Sprintf("❌ **Content Analysis Failed**\n\nUnable to access %s: %s", url, reason)
}

func warnMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "⚠️"
}
