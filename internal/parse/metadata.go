package parse

import (
	"regexp"

	"github.com/sprite-ai/revmark/internal/model"
)

// Document-level metadata is recovered by trying, per field, an ordered
// list of label patterns against the whole text. The first hit wins and
// fields never depend on one another; a report with only a branch line
// still gets its branch extracted.

// Defaults used when a field cannot be recovered.
const (
	DefaultTitle      = "Code Review Report"
	DefaultBranch     = "main"
	DefaultRepository = "unknown"
	DefaultProvider   = "AI"
	DefaultModel      = "unknown"
)

var titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Each label is tried bold-wrapped first, then plain.
var (
	timestampPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\*\*(?:generated|date|timestamp):?\*\*:?\s*(.+)$`),
		regexp.MustCompile(`(?im)^(?:generated|date|timestamp)\s*:\s*(.+)$`),
	}
	branchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\*\*branch:?\*\*:?\s*(.+)$`),
		regexp.MustCompile(`(?im)^branch\s*:\s*(.+)$`),
	}
	repositoryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\*\*(?:repository|repo):?\*\*:?\s*(.+)$`),
		regexp.MustCompile(`(?im)^(?:repository|repo)\s*:\s*(.+)$`),
	}
	providerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\*\*(?:ai\s+provider|provider):?\*\*:?\s*(.+)$`),
		regexp.MustCompile(`(?im)^(?:ai\s+provider|provider)\s*:\s*(.+)$`),
	}
	modelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\*\*(?:ai\s+model|model):?\*\*:?\s*(.+)$`),
		regexp.MustCompile(`(?im)^(?:ai\s+model|model)\s*:\s*(.+)$`),
	}
)

// extractMetadata fills the document-level fields, leaving the defaults
// in place for anything the report does not carry.
func extractMetadata(doc string, out *model.Document) {
	if m := titleRe.FindStringSubmatch(doc); m != nil {
		if title := Clean(m[1]); title != "" {
			out.Title = title
		}
	}

	if v := firstMatch(doc, timestampPatterns); v != "" {
		out.Timestamp = v
	}
	if v := firstMatch(doc, branchPatterns); v != "" {
		out.Branch = v
	}
	if v := firstMatch(doc, repositoryPatterns); v != "" {
		out.Repository = v
	}
	if v := firstMatch(doc, providerPatterns); v != "" {
		out.Provider = v
	}
	if v := firstMatch(doc, modelPatterns); v != "" {
		out.Model = v
	}
}

func firstMatch(doc string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(doc); m != nil {
			if v := Clean(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}
