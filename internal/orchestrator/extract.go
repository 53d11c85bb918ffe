package orchestrator

import (
	"regexp"
	"strings"

	"seo-management-agent/internal/seo"
)

var (
	urlPattern    = regexp.MustCompile(`https?://[^\s]+`)
	domainPattern = regexp.MustCompile(`(?i)\b(?:[a-z0-9-]+\.)+[a-z]{2,}\b`)
)

// extractURL pulls the first absolute URL out of the message. When the
// user gave none the empty string is returned and the content handler's
// URL validation produces its formatted rejection.
func extractURL(message string) string {
	if m := urlPattern.FindString(message); m != "" {
		return strings.TrimRight(m, ".,;:!?)")
	}
	return ""
}

// extractDomain pulls the first domain-looking token, falling back to
// the permitted domain when the message names none. Handlers still
// enforce the permitted-domain check themselves.
func extractDomain(message string) string {
	if m := domainPattern.FindString(message); m != "" {
		return m
	}
	return seo.PermittedDomain
}

// extractTopic derives the research topic and optional focus area.
// "research keywords for salesforce consulting, focus on real estate"
// yields ("salesforce consulting", "real estate").
func extractTopic(message string) (topic, focus string) {
	lower := strings.ToLower(message)

	if idx := strings.Index(lower, " focus on "); idx >= 0 {
		focus = strings.Trim(message[idx+len(" focus on "):], " .,!?")
		message = message[:idx]
		lower = lower[:idx]
	}

	if idx := strings.Index(lower, " for "); idx >= 0 {
		topic = strings.Trim(message[idx+len(" for "):], " .,!?")
	}
	if topic == "" {
		topic = strings.Trim(message, " .,!?")
	}
	if topic == "" {
		topic = "SEO"
	}
	return topic, focus
}

// extractMetricType maps metric keywords in the message onto the
// performance selector, defaulting to all sections.
func extractMetricType(message string) seo.MetricType {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "ranking"):
		return seo.MetricRankings
	case strings.Contains(lower, "traffic"):
		return seo.MetricTraffic
	case strings.Contains(lower, "speed"), strings.Contains(lower, "vitals"):
		return seo.MetricSpeed
	default:
		return seo.MetricAll
	}
}
