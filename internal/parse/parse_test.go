package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprite-ai/revmark/internal/model"
)

const fullReport = `# Code Review: payment service

**Generated:** 2025-06-01 10:22
**Branch:** feature/payments
**Repository:** acme/payments
**AI Provider**: OpenAI
**Model**: gpt-4o

## Summary
Two significant problems and one nit. The webhook handler needs
attention before merging.

## Issues

**[CRITICAL] SQL Injection (Line 42)**
User input is concatenated into the query string.
Suggestion: use parameterized queries

**[LOW] Inconsistent naming (Line 8)**
The field mixes camelCase and snake_case.

🟠 **Unbounded retry loop (Line 130)**: the retry has no backoff
Suggestion: add exponential backoff with jitter

## Diff

` + "```diff\n+func handle(w http.ResponseWriter, r *http.Request) {\n```" + `

## Proposed fix

` + "```go // webhook.go\nfunc handle() error { return nil }\n```" + `
`

func TestParseFullReport(t *testing.T) {
	doc := Parse(fullReport)

	assert.Equal(t, "Code Review: payment service", doc.Title)
	assert.Equal(t, "2025-06-01 10:22", doc.Timestamp)
	assert.Equal(t, "feature/payments", doc.Branch)
	assert.Equal(t, "acme/payments", doc.Repository)
	assert.Equal(t, "OpenAI", doc.Provider)
	assert.Equal(t, "gpt-4o", doc.Model)
	assert.Contains(t, doc.Summary, "Two significant problems")

	require.Len(t, doc.Issues, 3)
	assert.Equal(t, model.SeverityCritical, doc.Issues[0].Severity)
	assert.Equal(t, 42, doc.Issues[0].Line)
	assert.Equal(t, model.SeverityHigh, doc.Issues[1].Severity)
	assert.Equal(t, 130, doc.Issues[1].Line)
	assert.Equal(t, model.SeverityLow, doc.Issues[2].Severity)
	assert.Equal(t, 8, doc.Issues[2].Line)

	assert.Contains(t, doc.DiffContent, "+func handle")
	assert.Equal(t, "func handle() error { return nil }", doc.CodeBlocks["webhook.go"])
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("")

	assert.NotNil(t, doc.Issues)
	assert.Empty(t, doc.Issues)
	assert.NotNil(t, doc.CodeBlocks)
	assert.Empty(t, doc.CodeBlocks)
	assert.Equal(t, "", doc.DiffContent)
	assert.Equal(t, "", doc.Summary)
	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, "main", doc.Branch)
	assert.Equal(t, "unknown", doc.Repository)
	assert.Equal(t, "AI", doc.Provider)
	assert.Equal(t, "unknown", doc.Model)
	assert.NotEmpty(t, doc.Timestamp)
}

func TestParseDeterministic(t *testing.T) {
	// With an explicit timestamp in the input, two parses of the same
	// text are fully identical.
	a := Parse(fullReport)
	b := Parse(fullReport)
	assert.Equal(t, a, b)
}

func TestParseSortInvariant(t *testing.T) {
	doc := Parse("**[LOW] c (Line 3)**\n**[CRITICAL] a (Line 9)**\n" +
		"**[CRITICAL] b (Line 2)**\n**[MEDIUM] d (Line 1)**\n")

	require.Len(t, doc.Issues, 4)
	for i := 1; i < len(doc.Issues); i++ {
		prev, cur := doc.Issues[i-1], doc.Issues[i]
		assert.LessOrEqual(t, prev.Severity.Rank(), cur.Severity.Rank())
		if prev.Severity == cur.Severity {
			assert.LessOrEqual(t, prev.Line, cur.Line)
		}
	}
	assert.Equal(t, 2, doc.Issues[0].Line)
	assert.Equal(t, 9, doc.Issues[1].Line)
}

func TestParseFallbackEngagesOnZeroPrimaryMatches(t *testing.T) {
	doc := Parse("## Findings\nCritical issue here, see line 12 for details")

	require.Len(t, doc.Issues, 1)
	assert.Equal(t, 12, doc.Issues[0].Line)
	assert.Equal(t, model.SeverityCritical, doc.Issues[0].Severity)
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"```",
		"```diff",
		"****",
		"**[] (Line )**",
		"# \n## \n### ",
		"(Line 99999999999999999999)",
		"\x00\x01\x02",
		"🔴🔴🔴",
		"**[CRITICAL] unterminated (Line 5",
	}
	for _, in := range inputs {
		doc := Parse(in)
		require.NotNil(t, doc, "input %q", in)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(path, []byte(fullReport), 0644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Issues, 3)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}
