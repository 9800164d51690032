package render

import (
	"io"
	"strings"

	"github.com/sprite-ai/revmark/internal/model"
)

// MarkdownWriter re-emits the document as normalized markdown: one
// predictable shape regardless of how messy the source report was.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, doc *model.Document) error {
	ew := &errWriter{w: w}

	ew.printf("# %s\n\n", doc.Title)
	ew.printf("**Generated:** %s\n", doc.Timestamp)
	ew.printf("**Branch:** %s\n", doc.Branch)
	ew.printf("**Repository:** %s\n", doc.Repository)
	ew.printf("**AI Provider:** %s\n", doc.Provider)
	ew.printf("**Model:** %s\n", doc.Model)

	if doc.Summary != "" {
		ew.printf("\n## Summary\n\n%s\n", doc.Summary)
	}

	if len(doc.Issues) > 0 {
		ew.printf("\n## Issues (%s)\n", doc.IssueSummary())
		for _, iss := range doc.Issues {
			ew.printf("\n**[%s] %s (Line %d)**\n",
				strings.ToUpper(iss.Severity.String()), iss.Title, iss.Line)
			if iss.File != "" {
				ew.printf("File: %s\n", iss.File)
			}
			ew.printf("Category: %s\n", iss.Category)
			if iss.Description != "" {
				ew.printf("\n%s\n", iss.Description)
			}
			if iss.Suggestion != "" {
				ew.printf("\nSuggestion: %s\n", iss.Suggestion)
			}
			if iss.AgentPrompt != "" {
				ew.printf("\nAgent Prompt:\n```text\n%s\n```\n", iss.AgentPrompt)
			}
		}
	}

	if doc.DiffContent != "" {
		ew.printf("\n## Diff\n\n```diff\n%s\n```\n", doc.DiffContent)
	}

	for _, name := range sortedBlockNames(doc.CodeBlocks) {
		ew.printf("\n## Code: %s\n\n```%s\n%s\n```\n",
			name, extOf(name), doc.CodeBlocks[name])
	}

	return ew.err
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return ""
}
