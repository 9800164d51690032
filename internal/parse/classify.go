package parse

import (
	"strings"

	"github.com/sprite-ai/revmark/internal/model"
)

// Keyword/emoji tables for classification. These are ordered slices,
// not maps: the first matching entry wins, and changing the iteration
// order changes how ambiguous text classifies.
var severityKeywords = []struct {
	severity model.Severity
	keys     []string
}{
	{model.SeverityCritical, []string{"critical", "🔴", "blocker"}},
	{model.SeverityHigh, []string{"high", "🟠", "major"}},
	{model.SeverityMedium, []string{"medium", "🟡", "warning"}},
	{model.SeverityLow, []string{"low", "🔵", "minor"}},
	{model.SeverityInfo, []string{"info", "⚪", "note"}},
}

var categoryKeywords = []struct {
	category model.Category
	keys     []string
}{
	{model.CategorySecurity, []string{"security", "🛡️", "vulnerability", "auth"}},
	{model.CategoryPerformance, []string{"performance", "⚡", "optimization", "slow"}},
	{model.CategoryArchitecture, []string{"architecture", "🏗️", "design", "pattern"}},
	{model.CategoryTesting, []string{"test", "🧪", "coverage"}},
	{model.CategoryDocumentation, []string{"document", "📚", "comment", "docs"}},
}

// normalizeSeverity maps an explicitly captured severity token to a
// known level. Tokens outside every keyword set (for example
// "moderate") report ok=false so the caller can discard the match.
func normalizeSeverity(token string) (model.Severity, bool) {
	token = strings.ToLower(token)
	for _, entry := range severityKeywords {
		for _, key := range entry.keys {
			if strings.Contains(token, key) {
				return entry.severity, true
			}
		}
	}
	return model.SeverityInfo, false
}

// inferSeverity classifies free text. Unlike normalizeSeverity it is
// total: text with no severity signal is info.
func inferSeverity(text string) model.Severity {
	if sev, ok := normalizeSeverity(text); ok {
		return sev
	}
	return model.SeverityInfo
}

// inferCategory classifies free text, defaulting to general.
func inferCategory(text string) model.Category {
	text = strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, key := range entry.keys {
			if strings.Contains(text, key) {
				return entry.category
			}
		}
	}
	return model.CategoryGeneral
}

// hasSeveritySignal reports whether text mentions any severity keyword
// or emoji. The fallback scanner uses this to decide which sections
// are worth mining.
func hasSeveritySignal(text string) bool {
	_, ok := normalizeSeverity(text)
	return ok
}
