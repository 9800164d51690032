package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprite-ai/revmark/internal/model"
)

func TestFallbackActivation(t *testing.T) {
	// No primary pattern matches here; the section scanner must still
	// recover the finding.
	doc := "## Findings\nCritical issue here, see line 12 for details"

	require.Empty(t, extractIssues(doc))

	issues := fallbackIssues(doc)
	require.Len(t, issues, 1)

	iss := issues[0]
	assert.Equal(t, 12, iss.Line)
	assert.Equal(t, model.SeverityCritical, iss.Severity)
	assert.Equal(t, "Findings", iss.Title)
}

func TestFallbackOneIssuePerLineMention(t *testing.T) {
	doc := "## Problems\nHigh severity concern on line 4 and again on line 9."

	issues := fallbackIssues(doc)
	require.Len(t, issues, 2)
	assert.Equal(t, 4, issues[0].Line)
	assert.Equal(t, 9, issues[1].Line)
	for _, iss := range issues {
		assert.Equal(t, model.SeverityHigh, iss.Severity)
	}
}

func TestFallbackSkipsSectionsWithoutSeveritySignal(t *testing.T) {
	doc := "## Notes\nsomething neutral about line 3\n\n## Hotspots\ncritical problem at line 7"

	issues := fallbackIssues(doc)
	require.Len(t, issues, 2)
	// "Notes" carries "note", an info keyword, so it is scanned too;
	// the neutral wording stays info while the hotspot is critical.
	assert.Equal(t, model.SeverityInfo, issues[0].Severity)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, model.SeverityCritical, issues[1].Severity)
	assert.Equal(t, 7, issues[1].Line)
}

func TestFallbackPlaceholders(t *testing.T) {
	doc := "## \nwarning line 5"

	issues := fallbackIssues(doc)
	require.Len(t, issues, 1)

	iss := issues[0]
	assert.Equal(t, model.SeverityMedium, iss.Severity)
	assert.Equal(t, "warning line 5", iss.Description)
	assert.Equal(t, defaultSuggestion, iss.Suggestion)
}

func TestFallbackSuggestionLabel(t *testing.T) {
	doc := "## Review\ncritical flaw at line 2\nFix: rotate the leaked key"

	issues := fallbackIssues(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "rotate the leaked key", issues[0].Suggestion)
}

func TestFallbackPreambleSection(t *testing.T) {
	// Text before the first heading forms its own section.
	doc := "critical problem at line 1\n\n## Later\nnothing here"

	issues := fallbackIssues(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, model.SeverityCritical, issues[0].Severity)
}

func TestFallbackEmptyDocument(t *testing.T) {
	assert.Empty(t, fallbackIssues(""))
	assert.Empty(t, fallbackIssues("## Section\nno signal, no lines"))
}
