// Package model defines the core data types shared across revmark.
package model

import "fmt"

// Severity categorizes how serious a review issue is. Lower values are
// more severe, so the underlying value doubles as a sort rank.
type Severity int

const (
	SeverityCritical Severity = iota
	SeverityHigh
	SeverityMedium
	SeverityLow
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Rank returns the numeric sort rank; critical is 0 and sorts first.
func (s Severity) Rank() int {
	return int(s)
}

// Severities lists all severities from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// Category is the topical tag attached to an issue.
type Category int

const (
	CategorySecurity Category = iota
	CategoryPerformance
	CategoryArchitecture
	CategoryTesting
	CategoryDocumentation
	CategoryGeneral
)

func (c Category) String() string {
	switch c {
	case CategorySecurity:
		return "security"
	case CategoryPerformance:
		return "performance"
	case CategoryArchitecture:
		return "architecture"
	case CategoryTesting:
		return "testing"
	case CategoryDocumentation:
		return "documentation"
	case CategoryGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Categories lists all categories in classification priority order.
var Categories = []Category{
	CategorySecurity,
	CategoryPerformance,
	CategoryArchitecture,
	CategoryTesting,
	CategoryDocumentation,
	CategoryGeneral,
}

// Issue is a single review finding recovered from a report.
type Issue struct {
	Line        int // 1-based; always set
	Column      int // 0 if unknown
	Severity    Severity
	Category    Category
	Title       string
	Description string
	Suggestion  string
	AgentPrompt string // empty if the report carried none
	File        string // empty if the report gave no path
}

// Location returns a display location like "auth.go:42" or "line 42".
func (i Issue) Location() string {
	if i.File != "" {
		if i.Column > 0 {
			return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
		}
		return fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	return fmt.Sprintf("line %d", i.Line)
}

// Document is the structured form of one AI-generated review report.
// It is built once per parse and not mutated afterwards.
type Document struct {
	Title      string
	Timestamp  string
	Branch     string
	Repository string
	Provider   string
	Model      string

	Summary string

	Issues      []Issue
	CodeBlocks  map[string]string // filename -> source text
	DiffContent string
}

// CountBySeverity returns the number of issues at each severity.
func (d *Document) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, iss := range d.Issues {
		counts[iss.Severity]++
	}
	return counts
}

// MaxSeverity returns the most severe level present, or SeverityInfo
// for an empty issue list.
func (d *Document) MaxSeverity() Severity {
	max := SeverityInfo
	for _, iss := range d.Issues {
		if iss.Severity < max {
			max = iss.Severity
		}
	}
	return max
}

// IssueSummary returns a one-line count summary like "1 critical, 2 medium".
func (d *Document) IssueSummary() string {
	if len(d.Issues) == 0 {
		return "No issues found"
	}

	counts := d.CountBySeverity()
	out := ""
	for _, level := range Severities {
		if c := counts[level]; c > 0 {
			if out != "" {
				out += ", "
			}
			out += fmt.Sprintf("%d %s", c, level)
		}
	}
	return out
}
