package formatter_test

import (
	"strings"
	"testing"
	"time"

	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
)

var fixedTime = time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

func TestTechnicalAudit(t *testing.T) {
	t.Run("Clean Audit", func(t *testing.T) {
		checks := seo.AuditChecks{
			HasSSL:             true,
			HasRobotsTxt:       true,
			HasSitemap:         true,
			HasTitle:           true,
			TitleText:          "GSBG Salesforce Consulting",
			HasMetaDescription: true,
			H1Count:            1,
		}
		report := formatter.TechnicalAudit("https://www.gsbg.in", checks, fixedTime)

		if !strings.Contains(report, "**Overall Score:** 100/100") {
			t.Errorf("expected full score in report")
		}
		if !strings.Contains(report, "No critical issues found") {
			t.Errorf("clean audit should report no issues")
		}
		if !strings.Contains(report, "2026-08-30 14:05") {
			t.Errorf("expected formatted timestamp")
		}
	})

	t.Run("Issues Ordered By Severity", func(t *testing.T) {
		checks := seo.AuditChecks{H1Count: 0}
		report := formatter.TechnicalAudit("https://www.gsbg.in", checks, fixedTime)

		ssl := strings.Index(report, "Enable HTTPS/SSL")
		robots := strings.Index(report, "Create robots.txt")
		sitemap := strings.Index(report, "Create XML sitemap")
		title := strings.Index(report, "Add title tag")
		if ssl < 0 || robots < 0 || sitemap < 0 || title < 0 {
			t.Fatalf("expected all four priority issues in report")
		}
		if !(ssl < robots && robots < sitemap && sitemap < title) {
			t.Errorf("priority issues out of order: ssl=%d robots=%d sitemap=%d title=%d", ssl, robots, sitemap, title)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		checks := seo.AuditChecks{HasSSL: true, HasTitle: true, TitleText: "T", H1Count: 2}
		a := formatter.TechnicalAudit("https://www.gsbg.in", checks, fixedTime)
		b := formatter.TechnicalAudit("https://www.gsbg.in", checks, fixedTime)
		if a != b {
			t.Error("same inputs must render identical reports")
		}
	})

	t.Run("Rejection Names Both Domains", func(t *testing.T) {
		report := formatter.AuditRejection("competitor.com")
		if !strings.Contains(report, seo.PermittedDomain) || !strings.Contains(report, "competitor.com") {
			t.Errorf("rejection should name permitted and requested domains: %q", report)
		}
	})
}

func TestContentAnalysis(t *testing.T) {
	t.Run("Empty Page Gets Four Recommendations", func(t *testing.T) {
		report := formatter.ContentAnalysis("https://www.gsbg.in/x", seo.ContentChecks{}, fixedTime)

		wanted := []string{
			"Add a title tag",
			"Add a meta description",
			"Add an H1 tag",
			"Add more content",
		}
		for _, w := range wanted {
			if !strings.Contains(report, w) {
				t.Errorf("expected recommendation %q", w)
			}
		}
		if !strings.Contains(report, "**Content Score:** 0/100") {
			t.Errorf("empty page should score zero")
		}
	})

	t.Run("Three H1 Thin Page", func(t *testing.T) {
		checks := seo.ContentChecks{
			H1Texts:   []string{"One", "Two", "Three"},
			WordCount: 150,
		}
		report := formatter.ContentAnalysis("https://www.gsbg.in/x", checks, fixedTime)

		if !strings.Contains(report, "**Content Score:** 0/100") {
			t.Errorf("expected score 0")
		}
		wanted := []string{
			"Add a title tag",
			"Add a meta description",
			"Use only ONE H1 per page",
			"Add more content. Current: 150 words",
		}
		for _, w := range wanted {
			if !strings.Contains(report, w) {
				t.Errorf("expected recommendation %q", w)
			}
		}
		if strings.Contains(report, "No critical issues found") {
			t.Errorf("page with failures must not get the all-clear line")
		}
	})

	t.Run("Suboptimal Lengths Get Warnings", func(t *testing.T) {
		checks := seo.ContentChecks{
			HasTitle:           true,
			TitleText:          "Short",
			HasMetaDescription: true,
			MetaDescription:    "Too short for the optimal window",
			H1Texts:            []string{"One", "Two"},
			WordCount:          500,
		}
		report := formatter.ContentAnalysis("https://www.gsbg.in/x", checks, fixedTime)

		if !strings.Contains(report, "Title Optimization") {
			t.Errorf("short title should trigger a length recommendation")
		}
		if !strings.Contains(report, "Use only ONE H1 per page") {
			t.Errorf("multiple H1s should trigger a structure recommendation")
		}
	})

	t.Run("Clean Page Gets All Clear", func(t *testing.T) {
		checks := seo.ContentChecks{
			HasTitle:           true,
			TitleText:          strings.Repeat("t", 45),
			HasMetaDescription: true,
			MetaDescription:    strings.Repeat("m", 140),
			H1Texts:            []string{"Main Heading"},
			WordCount:          1200,
		}
		report := formatter.ContentAnalysis("https://www.gsbg.in/x", checks, fixedTime)

		if !strings.Contains(report, "No critical issues found") {
			t.Errorf("clean page should get the all-clear line")
		}
		if !strings.Contains(report, "**Content Score:** 100/100") {
			t.Errorf("clean page should score 100")
		}
	})

	t.Run("At Most Three H1s Listed", func(t *testing.T) {
		checks := seo.ContentChecks{
			H1Texts: []string{"A", "B", "C", "D", "E"},
		}
		report := formatter.ContentAnalysis("https://www.gsbg.in/x", checks, fixedTime)

		if !strings.Contains(report, "**H1 Tags:** 5 found") {
			t.Errorf("count should reflect every H1")
		}
		if strings.Contains(report, "- D\n") {
			t.Errorf("only the first three H1 texts should be listed")
		}
	})
}

func TestKeywordResearch(t *testing.T) {
	report := formatter.KeywordResearch("Salesforce consulting", "real estate", fixedTime)

	if !strings.Contains(report, "**Topic:** Salesforce consulting") {
		t.Errorf("topic missing from report")
	}
	if !strings.Contains(report, "**Focus Area:** real estate") {
		t.Errorf("focus area missing from report")
	}
	if !strings.Contains(report, "Salesforce consulting near me") {
		t.Errorf("topic should be substituted into long-tail templates")
	}

	noFocus := formatter.KeywordResearch("CRM", "", fixedTime)
	if strings.Contains(noFocus, "Focus Area") {
		t.Errorf("focus line should be omitted when empty")
	}
}

func TestPerformance(t *testing.T) {
	t.Run("All Sections", func(t *testing.T) {
		report := formatter.Performance("gsbg.in", seo.MetricAll, fixedTime)
		for _, section := range []string{"Keyword Rankings", "Organic Traffic", "Core Web Vitals", "Recommended Tools", "Action Items"} {
			if !strings.Contains(report, section) {
				t.Errorf("expected section %q for all metrics", section)
			}
		}
	})

	t.Run("Single Section", func(t *testing.T) {
		report := formatter.Performance("gsbg.in", seo.MetricTraffic, fixedTime)
		if !strings.Contains(report, "Organic Traffic") {
			t.Errorf("traffic section missing")
		}
		for _, section := range []string{"Keyword Rankings", "Core Web Vitals", "Recommended Tools"} {
			if strings.Contains(report, section) {
				t.Errorf("unexpected section %q for traffic metrics", section)
			}
		}
	})
}

func TestComprehensive(t *testing.T) {
	t.Run("Pending Sections", func(t *testing.T) {
		report := formatter.Comprehensive("gsbg.in", formatter.SpecialistStatus{}, fixedTime)
		if n := strings.Count(report, formatter.NotYetRun); n != 4 {
			t.Errorf("expected 4 pending markers, got %d", n)
		}
		// Sections carry command hints, not interpolated findings.
		if !strings.Contains(report, "`audit gsbg.in`") {
			t.Errorf("expected audit command hint")
		}
	})

	t.Run("Completed Sections", func(t *testing.T) {
		status := formatter.SpecialistStatus{
			TechnicalAuditRun:  true,
			KeywordResearchRun: true,
			ContentAnalysisRun: true,
			PerformanceRun:     true,
		}
		report := formatter.Comprehensive("gsbg.in", status, fixedTime)
		if strings.Contains(report, formatter.NotYetRun) {
			t.Errorf("no section should be pending when every specialist ran")
		}
	})
}
