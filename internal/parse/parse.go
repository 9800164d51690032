package parse

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sprite-ai/revmark/internal/model"
)

// Parse recovers a structured document from a free-form review report.
// It never fails: anything the heuristics cannot extract resolves to a
// default. The returned document is fully populated and safe to read
// without nil checks.
func Parse(text string) *model.Document {
	doc := &model.Document{
		Title:      DefaultTitle,
		Timestamp:  time.Now().Format("2006-01-02 15:04:05"),
		Branch:     DefaultBranch,
		Repository: DefaultRepository,
		Provider:   DefaultProvider,
		Model:      DefaultModel,
		Issues:     []model.Issue{},
		CodeBlocks: map[string]string{},
	}

	extractMetadata(text, doc)
	doc.Summary = extractSummary(text)

	issues := extractIssues(text)
	if len(issues) == 0 {
		issues = fallbackIssues(text)
	}
	if issues != nil {
		doc.Issues = issues
	}

	doc.DiffContent = extractDiff(text)
	extractCodeBlocks(text, doc.CodeBlocks)

	sortIssues(doc.Issues)
	return doc
}

// ParseFile reads the report at path and parses it. The read is the
// only operation that can fail.
func ParseFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return Parse(string(data)), nil
}

// sortIssues imposes the presentation order: most severe first, then
// by line. The sort is stable so equal issues keep extraction order.
func sortIssues(issues []model.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity.Rank() < issues[j].Severity.Rank()
		}
		return issues[i].Line < issues[j].Line
	})
}
