package formatter

import (
	"fmt"
	"strings"
	"time"
)

// SpecialistStatus describes whether each of the other specialists has
// stored findings in the current session.
type SpecialistStatus struct {
	TechnicalAuditRun  bool
	KeywordResearchRun bool
	ContentAnalysisRun bool
	PerformanceRun     bool
}

// NotYetRun is the line rendered for a specialist with no stored result.
const NotYetRun = "⚠️ Not yet run in this session."

// Comprehensive renders the cross-specialist SEO report. Sections carry
// command hints pointing the user at each specialist; the stored
// payloads only gate the run/not-run status line, their contents are
// not interpolated.
func Comprehensive(domain string, status SpecialistStatus, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 **Comprehensive SEO Report**\n\n")
	fmt.Fprintf(&b, "**Domain:** %s\n", domain)
	fmt.Fprintf(&b, "**Report Generated:** %s\n\n", now.Format(DateTimeFormat))
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, `## Executive Summary

This report provides an overview of %s's current SEO status and actionable recommendations for improvement.

`, domain)

	fmt.Fprintf(&b, `## 1. Technical SEO

%s

Run `+"`audit %s`"+` for detailed technical analysis including:
- HTTPS/SSL configuration
- robots.txt and sitemap.xml status
- Mobile-friendliness
- Page speed metrics
- Core Web Vitals

`, runStatus(status.TechnicalAuditRun), domain)

	fmt.Fprintf(&b, `## 2. Content Strategy

%s

Run `+"`analyze content at %s`"+` for page-level optimization including:
- Title tag and meta description optimization
- Heading structure (H1-H6)
- Content length and quality
- Keyword usage
- Internal linking

`, runStatus(status.ContentAnalysisRun), domain)

	fmt.Fprintf(&b, `## 3. Keyword Opportunities

%s

Run `+"`research keywords for [your topic]`"+` to discover:
- High-volume target keywords
- Long-tail opportunities
- Search intent analysis
- Competitor keyword gaps
- Content cluster ideas

`, runStatus(status.KeywordResearchRun))

	fmt.Fprintf(&b, `## 4. Performance Metrics

%s

Run `+"`check rankings for %s`"+` to monitor:
- Organic traffic trends
- Keyword position tracking
- Backlink profile analysis
- Conversion metrics
- Technical health scores

`, runStatus(status.PerformanceRun), domain)

	b.WriteString(`## Priority Action Plan

### Week 1: Foundation
1. ✅ Fix critical technical issues (HTTPS, robots.txt, sitemap)
2. ✅ Set up Google Search Console
3. ✅ Set up Google Analytics 4
4. ✅ Optimize homepage (title, meta, H1)

### Week 2-4: Content
1. ✅ Create 4-6 blog posts targeting long-tail keywords
2. ✅ Optimize existing pages
3. ✅ Build internal linking structure
4. ✅ Add schema markup

### Month 2-3: Growth
1. ✅ Build 10-15 quality backlinks
2. ✅ Monitor and adjust based on data
3. ✅ Expand content clusters
4. ✅ Improve page speed

### Month 4-6: Scale
1. ✅ Target more competitive keywords
2. ✅ Expand content production to 8-10 posts/month
3. ✅ Analyze competitor strategies
4. ✅ Refine based on performance data

## Expected Results

**Month 1:**
- Fix technical issues
- Establish baseline metrics
- First rankings for long-tail keywords

**Month 3:**
- 3-5 page 1 rankings
- 50-100% increase in organic traffic
- Improved crawl efficiency

**Month 6:**
- 10+ page 1 rankings
- 200-300% increase in organic traffic
- Established domain authority

---

**Next Step:** Run specific commands above for detailed analysis of each area.
`)

	return b.String()
}

func runStatus(run bool) string {
	if run {
		return "✅ Last results available from this session."
	}
	return NotYetRun
}
