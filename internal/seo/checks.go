package seo

// AuditChecks holds the boolean/count results of the technical audit.
type AuditChecks struct {
	HasSSL             bool
	HasRobotsTxt       bool
	HasSitemap         bool
	HasTitle           bool
	TitleText          string
	HasMetaDescription bool
	H1Count            int
}

// Score is the deterministic weighted sum over the audit checks.
// Weights: 20 https + 15 robots.txt + 15 sitemap + 20 title + 15 meta
// description + 15 at-least-one-h1 = 100 max.
func (c AuditChecks) Score() int {
	score := 0
	if c.HasSSL {
		score += 20
	}
	if c.HasRobotsTxt {
		score += 15
	}
	if c.HasSitemap {
		score += 15
	}
	if c.HasTitle {
		score += 20
	}
	if c.HasMetaDescription {
		score += 15
	}
	if c.H1Count >= 1 {
		score += 15
	}
	return score
}

// Checks flattens the audit results into the findings payload map.
func (c AuditChecks) Checks() map[string]any {
	return map[string]any{
		"has_ssl":              c.HasSSL,
		"has_robots_txt":       c.HasRobotsTxt,
		"has_sitemap":          c.HasSitemap,
		"has_title":            c.HasTitle,
		"title_text":           c.TitleText,
		"has_meta_description": c.HasMetaDescription,
		"h1_count":             c.H1Count,
	}
}

// Content length thresholds from the on-page SEO rules.
const (
	TitleLengthMin = 30
	TitleLengthMax = 60
	MetaLengthMin  = 120
	MetaLengthMax  = 160
	WordCountFloor = 300
	WordCountGood  = 1000
)

// ContentChecks holds the results of on-page content analysis.
type ContentChecks struct {
	HasTitle           bool
	TitleText          string
	HasMetaDescription bool
	MetaDescription    string
	H1Texts            []string
	WordCount          int
}

// MetaLengthOK reports whether the meta description length sits in the
// optimal [120,160] window.
func (c ContentChecks) MetaLengthOK() bool {
	n := len(c.MetaDescription)
	return c.HasMetaDescription && n >= MetaLengthMin && n <= MetaLengthMax
}

// TitleLengthOK reports whether the title length sits in the optimal
// [30,60] window.
func (c ContentChecks) TitleLengthOK() bool {
	n := len(c.TitleText)
	return c.HasTitle && n >= TitleLengthMin && n <= TitleLengthMax
}

// Score is the deterministic weighted sum over the content checks.
// Weights: 20 title + 20 meta + 15 exactly-one-h1 + 20 (words>=300) +
// 10 (words>=1000) + 15 meta-length-optimal = 100 max.
func (c ContentChecks) Score() int {
	score := 0
	if c.HasTitle {
		score += 20
	}
	if c.HasMetaDescription {
		score += 20
	}
	if len(c.H1Texts) == 1 {
		score += 15
	}
	if c.WordCount >= WordCountFloor {
		score += 20
	}
	if c.WordCount >= WordCountGood {
		score += 10
	}
	if c.MetaLengthOK() {
		score += 15
	}
	return score
}

// Checks flattens the content results into the findings payload map.
func (c ContentChecks) Checks() map[string]any {
	return map[string]any{
		"has_title":            c.HasTitle,
		"title_text":           c.TitleText,
		"title_length":         len(c.TitleText),
		"has_meta_description": c.HasMetaDescription,
		"meta_length":          len(c.MetaDescription),
		"h1_count":             len(c.H1Texts),
		"word_count":           c.WordCount,
	}
}
