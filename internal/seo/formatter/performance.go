package formatter

import (
	"fmt"
	"strings"
	"time"

	"seo-management-agent/internal/seo"
)

// Performance renders the performance monitoring report. Each metric
// selector gates a fixed section; "all" enables everything and an
// unknown selector yields only the header.
func Performance(domain string, metric seo.MetricType, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 **Performance Monitoring Report**\n\n")
	fmt.Fprintf(&b, "**Domain:** %s\n", domain)
	fmt.Fprintf(&b, "**Report Date:** %s\n", now.Format(DateTimeFormat))
	fmt.Fprintf(&b, "**Metrics Type:** %s\n\n", strings.ToUpper(string(metric)))

	if metric == seo.MetricAll || metric == seo.MetricRankings {
		b.WriteString(`### Keyword Rankings

**Note:** Connect your Google Search Console account for real-time ranking data.

**Priority Keywords to Track:**
- Salesforce consulting
- Real estate CRM
- Salesforce implementation
- CRM solutions India

**Tracking Recommendations:**
- Set up rank tracking in GSC
- Monitor weekly position changes
- Track competitor rankings
- Focus on page 2 keywords (easier wins)

`)
	}

	if metric == seo.MetricAll || metric == seo.MetricTraffic {
		b.WriteString(`### Organic Traffic

**Connect Google Analytics 4 for:**
- Monthly visitor count
- Traffic source breakdown
- User engagement metrics
- Conversion tracking

**Key Metrics to Monitor:**
- Organic sessions/month
- Bounce rate (aim for <50%)
- Average session duration
- Pages per session
- Goal completions

`)
	}

	if metric == seo.MetricAll || metric == seo.MetricSpeed {
		b.WriteString(`### Page Speed & Core Web Vitals

**Test your site speed at:**
- PageSpeed Insights (pagespeed.web.dev)
- GTmetrix
- WebPageTest

**Core Web Vitals Standards:**
- **LCP (Largest Contentful Paint):** <2.5s (Good)
- **FID (First Input Delay):** <100ms (Good)
- **CLS (Cumulative Layout Shift):** <0.1 (Good)

**Speed Optimization Tips:**
1. Compress images (use WebP format)
2. Enable browser caching
3. Minify CSS/JS
4. Use a CDN
5. Optimize server response time

`)
	}

	if metric == seo.MetricAll {
		b.WriteString(`### Recommended Tools

1. **Google Search Console** (Free) - PRIORITY 1
   - Set up at search.google.com/search-console
   - Submit sitemap
   - Monitor indexing status
   - Track keyword performance

2. **Google Analytics 4** (Free) - PRIORITY 1
   - Track user behavior
   - Set up conversion goals
   - Monitor traffic sources
   - Analyze user journeys

3. **PageSpeed Insights** (Free)
   - Test page speed
   - Get optimization recommendations
   - Monitor Core Web Vitals

### Action Items

1. ✅ **Set up Google Search Console** - PRIORITY 1
2. ✅ **Install Google Analytics 4** - PRIORITY 1
3. ✅ **Submit XML sitemap** - PRIORITY 2
4. ✅ **Fix technical issues** - Run technical audit
5. ✅ **Monitor weekly** - Check metrics every Monday

`)
	}

	return b.String()
}
