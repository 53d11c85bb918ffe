package formatter

import (
	"fmt"
	"strings"
	"time"
)

// KeywordResearch renders the keyword strategy template for a topic.
// This is a static strategic template parameterized by the topic; no
// live search volume data is involved.
func KeywordResearch(topic, focusArea string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 **Keyword Research Complete**\n\n")
	fmt.Fprintf(&b, "**Topic:** %s\n", topic)
	if focusArea != "" {
		fmt.Fprintf(&b, "**Focus Area:** %s\n", focusArea)
	}
	fmt.Fprintf(&b, "**Research Date:** %s\n\n", now.Format(DateTimeFormat))

	fmt.Fprintf(&b, `### Keyword Strategy

**Primary Keywords (Head Terms):**
These are high-volume, competitive keywords that define your core offering:

1. **Main Topic Keywords** - Focus on 2-3 word phrases with high intent
2. **Service/Product Keywords** - What you sell or offer
3. **Brand Keywords** - Your company name + modifiers

**Long-Tail Keywords (Opportunity):**
These are 4+ word phrases with lower competition and higher conversion:

1. **Question-Based:** "How to...", "What is...", "Best way to..."
2. **Location-Based:** "%[1]s near me", "%[1]s in [city]"
3. **Comparison:** "%[1]s vs", "best %[1]s for"
4. **Problem/Solution:** "fix %[1]s", "solve %[1]s issue"

### Search Intent Types

**Informational:** Users seeking knowledge (e.g., "what is %[1]s")
- **Target with:** Blog posts, guides, tutorials
- **Content format:** Educational, detailed

**Transactional:** Users ready to convert (e.g., "buy %[1]s")
- **Target with:** Product pages, service pages
- **Content format:** Clear CTAs, pricing, features

**Navigational:** Users looking for specific brand (e.g., "{your brand} %[1]s")
- **Target with:** Homepage, branded content
- **Content format:** Direct, authoritative

### Implementation Recommendations

1. **Start with Long-Tail:** Easier to rank, higher conversion
2. **Create Content Clusters:** Hub page + 5-10 supporting pages
3. **Optimize for Intent:** Match content format to search intent
4. **Track Rankings:** Monitor positions for target keywords weekly
5. **Build Backlinks:** Quality links to key pages

### Next Steps

1. **Content Audit:** Review existing content for keyword optimization
2. **Gap Analysis:** Identify missing content opportunities
3. **Competitor Research:** Analyze top-ranking competitors
4. **Content Creation:** Write 2-4 posts/month targeting keywords
5. **Performance Tracking:** Set up Google Search Console
`, topic)

	return b.String()
}
