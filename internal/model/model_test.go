package model

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		level Severity
		want  string
	}{
		{SeverityCritical, "critical"},
		{SeverityHigh, "high"},
		{SeverityMedium, "medium"},
		{SeverityLow, "low"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		if Severities[i-1].Rank() >= Severities[i].Rank() {
			t.Errorf("rank of %s (%d) should be below %s (%d)",
				Severities[i-1], Severities[i-1].Rank(), Severities[i], Severities[i].Rank())
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategorySecurity, "security"},
		{CategoryPerformance, "performance"},
		{CategoryArchitecture, "architecture"},
		{CategoryTesting, "testing"},
		{CategoryDocumentation, "documentation"},
		{CategoryGeneral, "general"},
		{Category(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestIssueLocation(t *testing.T) {
	tests := []struct {
		issue Issue
		want  string
	}{
		{Issue{Line: 42}, "line 42"},
		{Issue{Line: 42, File: "auth.go"}, "auth.go:42"},
		{Issue{Line: 42, Column: 7, File: "auth.go"}, "auth.go:42:7"},
		{Issue{Line: 42, Column: 7}, "line 42"},
	}
	for _, tt := range tests {
		if got := tt.issue.Location(); got != tt.want {
			t.Errorf("Location() = %q, want %q", got, tt.want)
		}
	}
}

func TestMaxSeverity(t *testing.T) {
	doc := &Document{}
	if got := doc.MaxSeverity(); got != SeverityInfo {
		t.Errorf("empty document MaxSeverity = %s, want info", got)
	}

	doc.Issues = []Issue{
		{Line: 1, Severity: SeverityLow},
		{Line: 2, Severity: SeverityCritical},
		{Line: 3, Severity: SeverityMedium},
	}
	if got := doc.MaxSeverity(); got != SeverityCritical {
		t.Errorf("MaxSeverity = %s, want critical", got)
	}
}

func TestIssueSummary(t *testing.T) {
	doc := &Document{}
	if got := doc.IssueSummary(); got != "No issues found" {
		t.Errorf("empty IssueSummary = %q", got)
	}

	doc.Issues = []Issue{
		{Line: 1, Severity: SeverityCritical},
		{Line: 2, Severity: SeverityMedium},
		{Line: 3, Severity: SeverityMedium},
	}
	want := "1 critical, 2 medium"
	if got := doc.IssueSummary(); got != want {
		t.Errorf("IssueSummary = %q, want %q", got, want)
	}
}
